package handler

import (
	"net/http"

	model "card-auction/internal/models"
	"card-auction/services/auction/helpers"
	"card-auction/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	RegisterProfile(username, externalRef, email string) (model.Profile, error)
	GetProfile(username string) (model.Profile, error)
	SubmitCard(callerRef, cardName, cardQuality, imageURL string) (model.Card, error)
	UpdateCard(callerRef, cardID, cardName, cardQuality, imageURL string) (model.Card, error)
	SetCardValidated(cardID string, validated bool) (model.Card, error)
	DeleteCard(callerRef, cardID string) error
	ListMyCards(callerRef string) ([]model.Card, error)
	ListMyNotifications(callerRef string) ([]model.Notification, error)
	MarkNotificationsRead(callerRef string) error
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RegisterProfileHandler handles POST /profiles
func (h *CatalogHandler) RegisterProfileHandler(c *gin.Context) {
	var req helpers.RegisterProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterProfileHandler", err)
		return
	}

	p, err := h.service.RegisterProfile(req.Username, req.ExternalRef, req.Email)
	if err != nil {
		helpers.RespondError(c, "RegisterProfileHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, p, "profile registered successfully")
	helpers.LogSuccess("RegisterProfileHandler", "profile registered successfully", map[string]any{
		"user_id":  p.UserID,
		"username": p.Username,
	})
}

// GetProfileHandler handles GET /profiles/:username
func (h *CatalogHandler) GetProfileHandler(c *gin.Context) {
	p, err := h.service.GetProfile(c.Param("username"))
	if err != nil {
		helpers.RespondError(c, "GetProfileHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, p, "profile retrieved successfully")
}

// SubmitCardHandler handles POST /cards
func (h *CatalogHandler) SubmitCardHandler(c *gin.Context) {
	callerRef, ok := helpers.CallerRef(c)
	if !ok {
		return
	}

	var req helpers.SubmitCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitCardHandler", err)
		return
	}

	card, err := h.service.SubmitCard(callerRef, req.CardName, req.CardQuality, req.ImageURL)
	if err != nil {
		helpers.RespondError(c, "SubmitCardHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, card, "card submitted successfully")
	helpers.LogSuccess("SubmitCardHandler", "card submitted successfully", map[string]any{
		"card_id":  card.CardID,
		"owner_id": card.OwnerID,
	})
}

// MyCardsHandler handles GET /cards/mine
func (h *CatalogHandler) MyCardsHandler(c *gin.Context) {
	callerRef, ok := helpers.CallerRef(c)
	if !ok {
		return
	}

	cards, err := h.service.ListMyCards(callerRef)
	if err != nil {
		helpers.RespondError(c, "MyCardsHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, cards, "cards retrieved successfully")
}

// UpdateCardHandler handles PUT /cards/:card_id
func (h *CatalogHandler) UpdateCardHandler(c *gin.Context) {
	callerRef, ok := helpers.CallerRef(c)
	if !ok {
		return
	}

	var req helpers.SubmitCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCardHandler", err)
		return
	}

	card, err := h.service.UpdateCard(callerRef, c.Param("card_id"), req.CardName, req.CardQuality, req.ImageURL)
	if err != nil {
		helpers.RespondError(c, "UpdateCardHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, card, "card updated successfully")
	helpers.LogSuccess("UpdateCardHandler", "card updated successfully", map[string]any{
		"card_id": card.CardID,
	})
}

// ValidateCardHandler handles PUT /cards/:card_id/validated. This is the
// authenticity collaborator's entry point; it flips the flag and nothing else.
func (h *CatalogHandler) ValidateCardHandler(c *gin.Context) {
	var req helpers.ValidateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ValidateCardHandler", err)
		return
	}

	card, err := h.service.SetCardValidated(c.Param("card_id"), *req.IsValidated)
	if err != nil {
		helpers.RespondError(c, "ValidateCardHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, card, "card validation updated")
	helpers.LogSuccess("ValidateCardHandler", "card validation updated", map[string]any{
		"card_id":      card.CardID,
		"is_validated": card.IsValidated,
	})
}

// DeleteCardHandler handles DELETE /cards/:card_id
func (h *CatalogHandler) DeleteCardHandler(c *gin.Context) {
	callerRef, ok := helpers.CallerRef(c)
	if !ok {
		return
	}

	cardID := c.Param("card_id")
	if err := h.service.DeleteCard(callerRef, cardID); err != nil {
		helpers.RespondError(c, "DeleteCardHandler", err)
		return
	}

	utils.JSONMessage(c, http.StatusOK, "card deleted successfully")
	helpers.LogSuccess("DeleteCardHandler", "card deleted successfully", map[string]any{
		"card_id": cardID,
	})
}

// MyNotificationsHandler handles GET /notifications
func (h *CatalogHandler) MyNotificationsHandler(c *gin.Context) {
	callerRef, ok := helpers.CallerRef(c)
	if !ok {
		return
	}

	notifications, err := h.service.ListMyNotifications(callerRef)
	if err != nil {
		helpers.RespondError(c, "MyNotificationsHandler", err)
		return
	}

	resp := helpers.NotificationFeedResponse{
		Notifications: notifications,
		Total:         len(notifications),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "notifications retrieved successfully")
}

// MarkReadHandler handles PUT /notifications/mark-read
func (h *CatalogHandler) MarkReadHandler(c *gin.Context) {
	callerRef, ok := helpers.CallerRef(c)
	if !ok {
		return
	}

	if err := h.service.MarkNotificationsRead(callerRef); err != nil {
		helpers.RespondError(c, "MarkReadHandler", err)
		return
	}

	utils.JSONMessage(c, http.StatusOK, "all notifications marked as read")
}
