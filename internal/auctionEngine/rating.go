package auction

import (
	"fmt"

	"card-auction/internal/auctionerrors"
	model "card-auction/internal/models"
)

// RateSeller records the winning bidder's 1..5 rating of the seller and
// folds it into the seller's running average. Each auction carries one
// rating slot; marking it consumed before touching the profile keeps a
// repeat submission from inflating the aggregate.
func (e *AuctionEngine) RateSeller(callerRef, auctionID string, rating int) (model.Profile, error) {
	if rating < 1 || rating > 5 {
		return model.Profile{}, fmt.Errorf("engine: %w - rating must be between 1 and 5", auctionerrors.ErrInvalidArgument)
	}

	rater, err := e.resolver.ResolveProfile(callerRef)
	if err != nil {
		return model.Profile{}, fmt.Errorf("engine: rate seller: %w", err)
	}

	unlock := e.locks.lock(auctionID)
	defer unlock()

	a, err := e.store.GetAuction(auctionID)
	if err != nil {
		return model.Profile{}, fmt.Errorf("engine: rate seller: %w", err)
	}
	if status := model.DeriveStatus(e.now(), a.EndTime, a.HasBidder()); status != model.StatusClosed {
		return model.Profile{}, fmt.Errorf("engine: %w - auction %s is not closed", auctionerrors.ErrInvalidState, auctionID)
	}
	if a.HighestBidderID == nil || *a.HighestBidderID != rater.UserID {
		return model.Profile{}, fmt.Errorf("engine: %w - only the winning bidder may rate the seller", auctionerrors.ErrPermissionDenied)
	}
	if a.IsRated {
		return model.Profile{}, fmt.Errorf("engine: %w - auction %s has already been rated", auctionerrors.ErrConflict, auctionID)
	}

	if err := e.store.MarkAuctionRated(auctionID); err != nil {
		return model.Profile{}, fmt.Errorf("engine: rate seller: %w", err)
	}
	if err := e.store.ApplySellerRating(a.SellerID, rating); err != nil {
		return model.Profile{}, fmt.Errorf("engine: rate seller: %w", err)
	}

	seller, err := e.store.GetProfileByID(a.SellerID)
	if err != nil {
		return model.Profile{}, fmt.Errorf("engine: rate seller: %w", err)
	}
	return seller, nil
}
