package handler

import (
	"net/http"
	"strconv"

	auction "card-auction/internal/auctionEngine"
	model "card-auction/internal/models"
	"card-auction/services/auction/helpers"
	"card-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AuctionEngineInterface interface {
	CreateAuction(callerRef, cardID string, startingBid, minimumIncrement decimal.Decimal, durationHours float64) (model.Auction, error)
	PlaceBid(callerRef, auctionID string, amount decimal.Decimal) (model.Auction, error)
	GetAuctionDetails(auctionID string) (model.AuctionDetail, error)
	ListAuctions(page int) (auction.AuctionPage, error)
	ListMyAuctions(callerRef string) ([]model.Auction, error)
	ListWinningAuctions(callerRef string) ([]model.Auction, error)
	UpdateAuction(callerRef, auctionID string, minimumIncrement decimal.Decimal, durationHours float64) (model.Auction, error)
	DeleteAuction(callerRef, auctionID string) error
	RateSeller(callerRef, auctionID string, rating int) (model.Profile, error)
}

type AuctionHandler struct {
	engine AuctionEngineInterface
}

func NewAuctionHandler(engine AuctionEngineInterface) *AuctionHandler {
	return &AuctionHandler{engine: engine}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	callerRef, ok := helpers.CallerRef(c)
	if !ok {
		return
	}

	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	a, err := h.engine.CreateAuction(callerRef, req.CardID, req.StartingBid, req.MinimumIncrement, req.DurationHours)
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, a, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": a.AuctionID,
		"card_id":    a.CardID,
		"seller_id":  a.SellerID,
		"end_time":   a.EndTime,
	})
}

// ListAuctionsHandler handles GET /auctions?page=N
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			helpers.HandleBindError(c, "ListAuctionsHandler", err)
			return
		}
		page = parsed
	}

	listing, err := h.engine.ListAuctions(page)
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, listing, "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	detail, err := h.engine.GetAuctionDetails(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, detail, "auction retrieved successfully")
}

// MyAuctionsHandler handles GET /auctions/mine
func (h *AuctionHandler) MyAuctionsHandler(c *gin.Context) {
	callerRef, ok := helpers.CallerRef(c)
	if !ok {
		return
	}

	auctions, err := h.engine.ListMyAuctions(callerRef)
	if err != nil {
		helpers.RespondError(c, "MyAuctionsHandler", err)
		return
	}
	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// WinningAuctionsHandler handles GET /auctions/winning
func (h *AuctionHandler) WinningAuctionsHandler(c *gin.Context) {
	callerRef, ok := helpers.CallerRef(c)
	if !ok {
		return
	}

	auctions, err := h.engine.ListWinningAuctions(callerRef)
	if err != nil {
		helpers.RespondError(c, "WinningAuctionsHandler", err)
		return
	}
	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// UpdateAuctionHandler handles PUT /auctions/:auction_id
func (h *AuctionHandler) UpdateAuctionHandler(c *gin.Context) {
	callerRef, ok := helpers.CallerRef(c)
	if !ok {
		return
	}

	var req helpers.UpdateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	a, err := h.engine.UpdateAuction(callerRef, c.Param("auction_id"), req.MinimumIncrement, req.DurationHours)
	if err != nil {
		helpers.RespondError(c, "UpdateAuctionHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, a, "auction updated successfully")
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{
		"auction_id": a.AuctionID,
		"end_time":   a.EndTime,
	})
}

// DeleteAuctionHandler handles DELETE /auctions/:auction_id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	callerRef, ok := helpers.CallerRef(c)
	if !ok {
		return
	}

	auctionID := c.Param("auction_id")
	if err := h.engine.DeleteAuction(callerRef, auctionID); err != nil {
		helpers.RespondError(c, "DeleteAuctionHandler", err)
		return
	}

	utils.JSONMessage(c, http.StatusOK, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	callerRef, ok := helpers.CallerRef(c)
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	a, err := h.engine.PlaceBid(callerRef, auctionID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, a, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id": a.AuctionID,
		"amount":     a.HighestBid.String(),
	})
}

// RateSellerHandler handles PUT /auctions/:auction_id/rating
func (h *AuctionHandler) RateSellerHandler(c *gin.Context) {
	callerRef, ok := helpers.CallerRef(c)
	if !ok {
		return
	}

	var req helpers.RateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RateSellerHandler", err)
		return
	}

	auctionID := c.Param("auction_id")
	seller, err := h.engine.RateSeller(callerRef, auctionID, req.Rating)
	if err != nil {
		helpers.RespondError(c, "RateSellerHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, seller, "seller rated successfully")
	helpers.LogSuccess("RateSellerHandler", "seller rated successfully", map[string]any{
		"auction_id":   auctionID,
		"seller_id":    seller.UserID,
		"rating_count": seller.RatingCount,
	})
}
