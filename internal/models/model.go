package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile represents a registered marketplace user
type Profile struct {
	UserID      string  `json:"user_id" db:"user_id"`
	Username    string  `json:"username" db:"username"`
	ExternalRef string  `json:"external_ref" db:"external_ref"`
	Email       string  `json:"email" db:"email"`
	RatingCount int     `json:"rating_count" db:"rating_count"`
	RatingAvg   float64 `json:"rating_avg" db:"rating_avg"`
}

// Card represents a submitted trading card
type Card struct {
	CardID      string `json:"card_id" db:"card_id"`
	OwnerID     string `json:"owner_id" db:"owner_id"`
	CardName    string `json:"card_name" db:"card_name"`
	CardQuality string `json:"card_quality" db:"card_quality"`
	IsValidated bool   `json:"is_validated" db:"is_validated"`
	ImageURL    string `json:"image_url" db:"image_url"`
}

// Auction represents a timed sale of one card
type Auction struct {
	AuctionID        string          `json:"auction_id" db:"auction_id"`
	CardID           string          `json:"card_id" db:"card_id"`
	SellerID         string          `json:"seller_id" db:"seller_id"`
	StartingBid      decimal.Decimal `json:"starting_bid" db:"starting_bid"`
	MinimumIncrement decimal.Decimal `json:"minimum_increment" db:"minimum_increment"`
	HighestBid       decimal.Decimal `json:"highest_bid" db:"highest_bid"`
	HighestBidderID  *string         `json:"highest_bidder_id" db:"highest_bidder_id"`
	Status           AuctionStatus   `json:"status" db:"status"`
	IsRated          bool            `json:"is_rated" db:"is_rated"`
	EndTime          time.Time       `json:"end_time" db:"end_time"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}

// HasBidder reports whether at least one bid has been accepted.
func (a Auction) HasBidder() bool {
	return a.HighestBidderID != nil
}

// AuctionDetail is an auction joined with the card it sells,
// as served by the detail and listing endpoints.
type AuctionDetail struct {
	Auction
	CardName    string `json:"card_name" db:"card_name"`
	CardQuality string `json:"card_quality" db:"card_quality"`
	IsValidated bool   `json:"is_validated" db:"is_validated"`
	ImageURL    string `json:"image_url" db:"image_url"`
}

// Notification represents a durable message to a user
type Notification struct {
	NotificationID string    `json:"notification_id" db:"notification_id"`
	ReceiverID     string    `json:"receiver_id" db:"receiver_id"`
	AuctionID      *string   `json:"auction_id" db:"auction_id"`
	Message        string    `json:"message" db:"message"`
	TimeSent       time.Time `json:"time_sent" db:"time_sent"`
	IsRead         bool      `json:"is_read" db:"is_read"`
}
