package helpers

import (
	model "card-auction/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	CardID           string          `json:"card_id" binding:"required"`
	StartingBid      decimal.Decimal `json:"starting_bid" binding:"required"`
	MinimumIncrement decimal.Decimal `json:"minimum_increment" binding:"required"`
	DurationHours    float64         `json:"duration_hours" binding:"required"`
}

type UpdateAuctionRequest struct {
	MinimumIncrement decimal.Decimal `json:"minimum_increment" binding:"required"`
	DurationHours    float64         `json:"duration_hours" binding:"required"`
}

type PlaceBidRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type RateSellerRequest struct {
	Rating int `json:"rating" binding:"required"`
}

type RegisterProfileRequest struct {
	Username    string `json:"username" binding:"required"`
	ExternalRef string `json:"external_ref" binding:"required"`
	Email       string `json:"email"`
}

type SubmitCardRequest struct {
	CardName    string `json:"card_name" binding:"required"`
	CardQuality string `json:"card_quality"`
	ImageURL    string `json:"image_url"`
}

type ValidateCardRequest struct {
	IsValidated *bool `json:"is_validated" binding:"required"`
}

type NotificationFeedResponse struct {
	Notifications []model.Notification `json:"notifications"`
	Total         int                  `json:"total"`
}
