package auction

import (
	"fmt"
	"time"

	"card-auction/internal/auctionerrors"
	"card-auction/internal/identity"
	model "card-auction/internal/models"
	"card-auction/internal/repository"
	"card-auction/utils"

	"github.com/shopspring/decimal"
)

// Notifier is the notification dispatcher contract consumed by the engine.
// Notify must persist the record; PushLive is best-effort live delivery.
type Notifier interface {
	Notify(receiverID string, auctionID *string, message string) (model.Notification, error)
	PushLive(key string, n model.Notification)
}

// AuctionEngine owns auction creation, bid acceptance, status transitions
// and the sweep that finalizes ended auctions.
type AuctionEngine struct {
	store    repository.CatalogDB
	notifier Notifier
	resolver identity.Resolver
	locks    *lockTable
	pageSize int
	now      func() time.Time
}

// NewAuctionEngine creates a new AuctionEngine instance
func NewAuctionEngine(store repository.CatalogDB, notifier Notifier, resolver identity.Resolver, pageSize int) *AuctionEngine {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &AuctionEngine{
		store:    store,
		notifier: notifier,
		resolver: resolver,
		locks:    newLockTable(),
		pageSize: pageSize,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// AuctionPage is one page of the public auction listing
type AuctionPage struct {
	Auctions   []model.AuctionDetail `json:"auctions"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"total_pages"`
}

// CreateAuction lists a validated card for timed auction. Preconditions
// are checked in a fixed order, each with its own error kind.
func (e *AuctionEngine) CreateAuction(callerRef, cardID string, startingBid, minimumIncrement decimal.Decimal, durationHours float64) (model.Auction, error) {
	seller, err := e.resolver.ResolveProfile(callerRef)
	if err != nil {
		return model.Auction{}, fmt.Errorf("engine: create auction: %w", err)
	}

	card, err := e.store.GetCard(cardID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("engine: create auction: %w", err)
	}
	if card.OwnerID != seller.UserID {
		// A card the caller does not own is indistinguishable from a missing one.
		return model.Auction{}, fmt.Errorf("engine: card %s not owned by seller: %w", cardID, auctionerrors.ErrNotFound)
	}
	if !card.IsValidated {
		return model.Auction{}, fmt.Errorf("engine: %w - card %s not validated", auctionerrors.ErrInvalidState, cardID)
	}

	// The check-then-insert below is serialized per card so two
	// concurrent listings cannot both pass the single-active-auction
	// check. Card and auction ids never collide in the lock table.
	unlock := e.locks.lock(cardID)
	defer unlock()

	now := e.now()
	active, err := e.store.HasActiveAuctionForCard(cardID, now)
	if err != nil {
		return model.Auction{}, fmt.Errorf("engine: create auction: %w", err)
	}
	if active {
		return model.Auction{}, fmt.Errorf("engine: %w - card %s already in an active auction", auctionerrors.ErrConflict, cardID)
	}

	if startingBid.Cmp(decimal.Zero) <= 0 {
		return model.Auction{}, fmt.Errorf("engine: %w - starting bid must be positive", auctionerrors.ErrInvalidArgument)
	}
	if minimumIncrement.Cmp(decimal.Zero) <= 0 {
		return model.Auction{}, fmt.Errorf("engine: %w - minimum increment must be positive", auctionerrors.ErrInvalidArgument)
	}

	endTime := now.Add(time.Duration(durationHours * float64(time.Hour)))
	if !endTime.After(now) {
		return model.Auction{}, fmt.Errorf("engine: %w - auction duration must be positive", auctionerrors.ErrInvalidArgument)
	}

	a := model.Auction{
		AuctionID:        utils.GenerateID(),
		CardID:           cardID,
		SellerID:         seller.UserID,
		StartingBid:      startingBid,
		MinimumIncrement: minimumIncrement,
		HighestBid:       startingBid,
		HighestBidderID:  nil,
		Status:           model.StatusInProgress,
		EndTime:          endTime,
		CreatedAt:        now,
	}
	if err := e.store.CreateAuction(a); err != nil {
		return model.Auction{}, fmt.Errorf("engine: create auction: %w", err)
	}
	return a, nil
}

// PlaceBid validates and records a bid. The read-compare-write sequence
// is serialized per auction id.
func (e *AuctionEngine) PlaceBid(callerRef, auctionID string, amount decimal.Decimal) (model.Auction, error) {
	bidder, err := e.resolver.ResolveProfile(callerRef)
	if err != nil {
		return model.Auction{}, fmt.Errorf("engine: place bid: %w", err)
	}

	unlock := e.locks.lock(auctionID)
	defer unlock()

	a, err := e.store.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("engine: place bid: %w", err)
	}

	if status := model.DeriveStatus(e.now(), a.EndTime, a.HasBidder()); status != model.StatusInProgress {
		return model.Auction{}, fmt.Errorf("engine: %w - auction %s is %s", auctionerrors.ErrInvalidState, auctionID, status)
	}
	if bidder.UserID == a.SellerID {
		return model.Auction{}, fmt.Errorf("engine: %w - seller cannot bid on own auction", auctionerrors.ErrPermissionDenied)
	}

	floor := a.HighestBid.Add(a.MinimumIncrement)
	if amount.Cmp(floor) <= 0 {
		return model.Auction{}, fmt.Errorf("engine: %w - bid must exceed %s", auctionerrors.ErrInvalidArgument, floor)
	}

	previous := a.HighestBidderID
	if err := e.store.UpdateAuctionBid(auctionID, bidder.UserID, amount); err != nil {
		return model.Auction{}, fmt.Errorf("engine: place bid: %w", err)
	}
	a.HighestBid = amount
	a.HighestBidderID = &bidder.UserID

	if previous != nil && *previous != bidder.UserID {
		msg := fmt.Sprintf("You have been outbid on auction %s. The highest bid is now %s.", a.AuctionID, amount)
		e.sendNotification(*previous, a, msg)
	}
	return a, nil
}

// GetAuctionDetails returns the auction joined with its card, with a
// view-only status refresh.
func (e *AuctionEngine) GetAuctionDetails(auctionID string) (model.AuctionDetail, error) {
	d, err := e.store.GetAuctionDetail(auctionID)
	if err != nil {
		return model.AuctionDetail{}, fmt.Errorf("engine: get auction: %w", err)
	}
	d.Status = model.DeriveStatus(e.now(), d.EndTime, d.HasBidder())
	return d, nil
}

// ListAuctions returns one page of running auctions, soonest ending first.
func (e *AuctionEngine) ListAuctions(page int) (AuctionPage, error) {
	if page < 1 {
		return AuctionPage{}, fmt.Errorf("engine: %w - page must be >= 1", auctionerrors.ErrInvalidArgument)
	}

	now := e.now()
	offset := (page - 1) * e.pageSize
	auctions, err := e.store.ListActiveAuctions(now, e.pageSize, offset)
	if err != nil {
		return AuctionPage{}, fmt.Errorf("engine: list auctions: %w", err)
	}
	total, err := e.store.CountActiveAuctions(now)
	if err != nil {
		return AuctionPage{}, fmt.Errorf("engine: list auctions: %w", err)
	}

	totalPages := (total + e.pageSize - 1) / e.pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if auctions == nil {
		auctions = []model.AuctionDetail{}
	}
	return AuctionPage{Auctions: auctions, Page: page, TotalPages: totalPages}, nil
}

// ListMyAuctions returns all auctions the caller is selling.
func (e *AuctionEngine) ListMyAuctions(callerRef string) ([]model.Auction, error) {
	caller, err := e.resolver.ResolveProfile(callerRef)
	if err != nil {
		return nil, fmt.Errorf("engine: list my auctions: %w", err)
	}
	auctions, err := e.store.ListAuctionsBySeller(caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("engine: list my auctions: %w", err)
	}
	return e.refreshStatuses(auctions), nil
}

// ListWinningAuctions returns all auctions the caller currently leads or won.
func (e *AuctionEngine) ListWinningAuctions(callerRef string) ([]model.Auction, error) {
	caller, err := e.resolver.ResolveProfile(callerRef)
	if err != nil {
		return nil, fmt.Errorf("engine: list winning auctions: %w", err)
	}
	auctions, err := e.store.ListAuctionsByBidder(caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("engine: list winning auctions: %w", err)
	}
	return e.refreshStatuses(auctions), nil
}

// UpdateAuction lets the seller adjust the terms of an auction nobody
// has bid on yet.
func (e *AuctionEngine) UpdateAuction(callerRef, auctionID string, minimumIncrement decimal.Decimal, durationHours float64) (model.Auction, error) {
	caller, err := e.resolver.ResolveProfile(callerRef)
	if err != nil {
		return model.Auction{}, fmt.Errorf("engine: update auction: %w", err)
	}

	unlock := e.locks.lock(auctionID)
	defer unlock()

	a, err := e.store.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("engine: update auction: %w", err)
	}
	if a.SellerID != caller.UserID {
		return model.Auction{}, fmt.Errorf("engine: %w - only the seller may edit an auction", auctionerrors.ErrPermissionDenied)
	}

	now := e.now()
	if status := model.DeriveStatus(now, a.EndTime, a.HasBidder()); status != model.StatusInProgress {
		return model.Auction{}, fmt.Errorf("engine: %w - auction %s is %s", auctionerrors.ErrInvalidState, auctionID, status)
	}
	if a.HasBidder() {
		return model.Auction{}, fmt.Errorf("engine: %w - auction %s already has bids", auctionerrors.ErrInvalidState, auctionID)
	}
	if minimumIncrement.Cmp(decimal.Zero) <= 0 {
		return model.Auction{}, fmt.Errorf("engine: %w - minimum increment must be positive", auctionerrors.ErrInvalidArgument)
	}

	endTime := now.Add(time.Duration(durationHours * float64(time.Hour)))
	if !endTime.After(now) {
		return model.Auction{}, fmt.Errorf("engine: %w - auction duration must be positive", auctionerrors.ErrInvalidArgument)
	}

	if err := e.store.UpdateAuctionTerms(auctionID, minimumIncrement, endTime); err != nil {
		return model.Auction{}, fmt.Errorf("engine: update auction: %w", err)
	}
	a.MinimumIncrement = minimumIncrement
	a.EndTime = endTime
	return a, nil
}

// DeleteAuction removes an auction that has not received a bid.
func (e *AuctionEngine) DeleteAuction(callerRef, auctionID string) error {
	caller, err := e.resolver.ResolveProfile(callerRef)
	if err != nil {
		return fmt.Errorf("engine: delete auction: %w", err)
	}

	unlock := e.locks.lock(auctionID)
	defer unlock()

	a, err := e.store.GetAuction(auctionID)
	if err != nil {
		return fmt.Errorf("engine: delete auction: %w", err)
	}
	if a.SellerID != caller.UserID {
		return fmt.Errorf("engine: %w - only the seller may delete an auction", auctionerrors.ErrPermissionDenied)
	}
	if a.HasBidder() {
		return fmt.Errorf("engine: %w - auction %s already has bids", auctionerrors.ErrInvalidState, auctionID)
	}

	if err := e.store.DeleteAuction(auctionID); err != nil {
		return fmt.Errorf("engine: delete auction: %w", err)
	}
	return nil
}

// refreshStatuses applies the derived status to a listing without
// touching stored state.
func (e *AuctionEngine) refreshStatuses(auctions []model.Auction) []model.Auction {
	now := e.now()
	out := make([]model.Auction, 0, len(auctions))
	for _, a := range auctions {
		a.Status = model.DeriveStatus(now, a.EndTime, a.HasBidder())
		out = append(out, a)
	}
	return out
}

// sendNotification persists a notification and attempts live delivery.
// Failures are logged, never surfaced: delivery must not fail the
// operation that triggered it.
func (e *AuctionEngine) sendNotification(receiverID string, a model.Auction, message string) {
	n, err := e.notifier.Notify(receiverID, &a.AuctionID, message)
	if err != nil {
		utils.Error("engine: notification insert failed", map[string]any{
			"receiver_id": receiverID,
			"auction_id":  a.AuctionID,
			"error":       err.Error(),
		})
		return
	}

	receiver, err := e.store.GetProfileByID(receiverID)
	if err != nil {
		utils.Warn("engine: live push skipped, receiver profile missing", map[string]any{
			"receiver_id": receiverID,
			"auction_id":  a.AuctionID,
		})
		return
	}
	e.notifier.PushLive(receiver.Email, n)
}
