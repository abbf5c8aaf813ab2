package repository

import (
	"time"

	model "card-auction/internal/models"

	"github.com/shopspring/decimal"
)

// ProfileDB defines profile storage for the catalog store
type ProfileDB interface {
	CreateProfile(p model.Profile) error
	GetProfileByID(userID string) (model.Profile, error)
	GetProfileByRef(externalRef string) (model.Profile, error)
	GetProfileByUsername(username string) (model.Profile, error)
	ApplySellerRating(userID string, rating int) error
}

// CardDB defines card storage for the catalog store
type CardDB interface {
	CreateCard(c model.Card) error
	GetCard(cardID string) (model.Card, error)
	UpdateCard(c model.Card) error
	DeleteCard(cardID string) error
	ListCardsByOwner(ownerID string) ([]model.Card, error)
	CountAuctionsForCard(cardID string) (int, error)
}

// AuctionDB defines auction storage for the catalog store
type AuctionDB interface {
	CreateAuction(a model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	GetAuctionDetail(auctionID string) (model.AuctionDetail, error)
	UpdateAuctionBid(auctionID, bidderID string, amount decimal.Decimal) error
	UpdateAuctionStatus(auctionID string, status model.AuctionStatus) error
	UpdateAuctionTerms(auctionID string, increment decimal.Decimal, endTime time.Time) error
	MarkAuctionRated(auctionID string) error
	DeleteAuction(auctionID string) error
	ListActiveAuctions(now time.Time, limit, offset int) ([]model.AuctionDetail, error)
	CountActiveAuctions(now time.Time) (int, error)
	ListAuctionsBySeller(sellerID string) ([]model.Auction, error)
	ListAuctionsByBidder(bidderID string) ([]model.Auction, error)
	ListEndedInProgress(now time.Time) ([]model.Auction, error)
	HasActiveAuctionForCard(cardID string, now time.Time) (bool, error)
}

// NotificationDB defines notification storage for the catalog store
type NotificationDB interface {
	InsertNotification(n model.Notification) error
	ListNotificationsByReceiver(receiverID string) ([]model.Notification, error)
	MarkAllNotificationsRead(receiverID string) error
}

// CatalogDB is the full catalog store consumed by the auction engine
// and the catalog service.
type CatalogDB interface {
	ProfileDB
	CardDB
	AuctionDB
	NotificationDB
}
