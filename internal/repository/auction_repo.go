package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"card-auction/internal/auctionerrors"
	model "card-auction/internal/models"

	"github.com/shopspring/decimal"
)

const auctionDetailColumns = `
	a.auction_id, a.card_id, a.seller_id, a.starting_bid, a.minimum_increment,
	a.highest_bid, a.highest_bidder_id, a.status, a.end_time, a.created_at,
	c.card_name, c.card_quality, c.is_validated, c.image_url`

// CreateAuction inserts a new auction row
func (r *SQLRepo) CreateAuction(a model.Auction) error {
	_, err := r.db.Exec(`
		INSERT INTO auctions(auction_id, card_id, seller_id, starting_bid, minimum_increment,
			highest_bid, highest_bidder_id, status, is_rated, end_time, created_at)
		VALUES(?,?,?,?,?,?,?,?,?,?,?)`,
		a.AuctionID, a.CardID, a.SellerID, a.StartingBid, a.MinimumIncrement,
		a.HighestBid, a.HighestBidderID, a.Status, a.IsRated, a.EndTime, a.CreatedAt)
	return mapWriteError(fmt.Sprintf("create auction %s", a.AuctionID), err)
}

// GetAuction returns the auction with the given id
func (r *SQLRepo) GetAuction(auctionID string) (model.Auction, error) {
	var a model.Auction
	err := r.db.Get(&a, `SELECT * FROM auctions WHERE auction_id = ?`, auctionID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("repository: auction %s: %w", auctionID, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("repository: get auction %s: %w", auctionID, err)
	}
	return a, nil
}

// GetAuctionDetail returns the auction joined with its card
func (r *SQLRepo) GetAuctionDetail(auctionID string) (model.AuctionDetail, error) {
	var d model.AuctionDetail
	err := r.db.Get(&d, `
		SELECT `+auctionDetailColumns+`
		FROM auctions a
		JOIN cards c ON c.card_id = a.card_id
		WHERE a.auction_id = ?`, auctionID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.AuctionDetail{}, fmt.Errorf("repository: auction %s: %w", auctionID, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.AuctionDetail{}, fmt.Errorf("repository: get auction detail %s: %w", auctionID, err)
	}
	return d, nil
}

// UpdateAuctionBid records a new highest bid and bidder. The guard on
// status keeps a late write from touching a finalized auction.
func (r *SQLRepo) UpdateAuctionBid(auctionID, bidderID string, amount decimal.Decimal) error {
	res, err := r.db.Exec(`
		UPDATE auctions SET highest_bid = ?, highest_bidder_id = ?
		WHERE auction_id = ? AND status = ?`,
		amount, bidderID, auctionID, model.StatusInProgress)
	if err != nil {
		return fmt.Errorf("repository: record bid on %s: %w", auctionID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("repository: auction %s not open for bids: %w", auctionID, auctionerrors.ErrInvalidState)
	}
	return nil
}

// UpdateAuctionStatus persists a status transition
func (r *SQLRepo) UpdateAuctionStatus(auctionID string, status model.AuctionStatus) error {
	res, err := r.db.Exec(`UPDATE auctions SET status = ? WHERE auction_id = ?`, status, auctionID)
	if err != nil {
		return fmt.Errorf("repository: update status of %s: %w", auctionID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("repository: auction %s: %w", auctionID, auctionerrors.ErrNotFound)
	}
	return nil
}

// MarkAuctionRated consumes the auction's single rating slot. The guard
// on is_rated makes a second rating for the same auction fail atomically.
func (r *SQLRepo) MarkAuctionRated(auctionID string) error {
	res, err := r.db.Exec(`
		UPDATE auctions SET is_rated = 1 WHERE auction_id = ? AND is_rated = 0`, auctionID)
	if err != nil {
		return fmt.Errorf("repository: mark auction %s rated: %w", auctionID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("repository: auction %s already rated: %w", auctionID, auctionerrors.ErrConflict)
	}
	return nil
}

// UpdateAuctionTerms overwrites the seller-editable auction fields
func (r *SQLRepo) UpdateAuctionTerms(auctionID string, increment decimal.Decimal, endTime time.Time) error {
	res, err := r.db.Exec(`
		UPDATE auctions SET minimum_increment = ?, end_time = ? WHERE auction_id = ?`,
		increment, endTime, auctionID)
	if err != nil {
		return fmt.Errorf("repository: update terms of %s: %w", auctionID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("repository: auction %s: %w", auctionID, auctionerrors.ErrNotFound)
	}
	return nil
}

// DeleteAuction removes an auction row
func (r *SQLRepo) DeleteAuction(auctionID string) error {
	res, err := r.db.Exec(`DELETE FROM auctions WHERE auction_id = ?`, auctionID)
	if err != nil {
		return mapWriteError(fmt.Sprintf("delete auction %s", auctionID), err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("repository: auction %s: %w", auctionID, auctionerrors.ErrNotFound)
	}
	return nil
}

// ListActiveAuctions returns a page of running auctions, soonest ending first
func (r *SQLRepo) ListActiveAuctions(now time.Time, limit, offset int) ([]model.AuctionDetail, error) {
	var out []model.AuctionDetail
	err := r.db.Select(&out, `
		SELECT `+auctionDetailColumns+`
		FROM auctions a
		JOIN cards c ON c.card_id = a.card_id
		WHERE a.status = ? AND a.end_time > ?
		ORDER BY a.end_time
		LIMIT ? OFFSET ?`,
		model.StatusInProgress, now, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("repository: list active auctions: %w", err)
	}
	return out, nil
}

// CountActiveAuctions counts running auctions for pagination
func (r *SQLRepo) CountActiveAuctions(now time.Time) (int, error) {
	var n int
	err := r.db.Get(&n, `
		SELECT COUNT(*) FROM auctions WHERE status = ? AND end_time > ?`,
		model.StatusInProgress, now)
	if err != nil {
		return 0, fmt.Errorf("repository: count active auctions: %w", err)
	}
	return n, nil
}

// ListAuctionsBySeller returns all auctions a user is selling
func (r *SQLRepo) ListAuctionsBySeller(sellerID string) ([]model.Auction, error) {
	var out []model.Auction
	err := r.db.Select(&out, `
		SELECT * FROM auctions WHERE seller_id = ? ORDER BY end_time`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("repository: list auctions for seller %s: %w", sellerID, err)
	}
	return out, nil
}

// ListAuctionsByBidder returns all auctions a user currently leads or has won
func (r *SQLRepo) ListAuctionsByBidder(bidderID string) ([]model.Auction, error) {
	var out []model.Auction
	err := r.db.Select(&out, `
		SELECT * FROM auctions WHERE highest_bidder_id = ? ORDER BY end_time`, bidderID)
	if err != nil {
		return nil, fmt.Errorf("repository: list auctions for bidder %s: %w", bidderID, err)
	}
	return out, nil
}

// ListEndedInProgress returns auctions whose end time has passed but whose
// stored status has not been finalized by the sweep yet.
func (r *SQLRepo) ListEndedInProgress(now time.Time) ([]model.Auction, error) {
	var out []model.Auction
	err := r.db.Select(&out, `
		SELECT * FROM auctions WHERE status = ? AND end_time <= ?`,
		model.StatusInProgress, now)
	if err != nil {
		return nil, fmt.Errorf("repository: list ended auctions: %w", err)
	}
	return out, nil
}

// HasActiveAuctionForCard reports whether the card is already listed in a
// running auction.
func (r *SQLRepo) HasActiveAuctionForCard(cardID string, now time.Time) (bool, error) {
	var n int
	err := r.db.Get(&n, `
		SELECT COUNT(*) FROM auctions WHERE card_id = ? AND status = ? AND end_time > ?`,
		cardID, model.StatusInProgress, now)
	if err != nil {
		return false, fmt.Errorf("repository: check active auction for card %s: %w", cardID, err)
	}
	return n > 0, nil
}
