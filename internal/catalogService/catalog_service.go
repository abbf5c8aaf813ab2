package catalog

import (
	"fmt"
	"strings"

	"card-auction/internal/auctionerrors"
	"card-auction/internal/identity"
	model "card-auction/internal/models"
	"card-auction/internal/repository"
	"card-auction/utils"
)

const defaultCardQuality = "UNDEFINED"

// CatalogService covers the card, profile and notification operations
// around the auction engine: seller submissions, the verification
// collaborator's validation hook, and the per-user notification feed.
type CatalogService struct {
	store    repository.CatalogDB
	resolver identity.Resolver
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(store repository.CatalogDB, resolver identity.Resolver) *CatalogService {
	return &CatalogService{store: store, resolver: resolver}
}

// RegisterProfile creates a profile for a newly authenticated identity.
func (s *CatalogService) RegisterProfile(username, externalRef, email string) (model.Profile, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(externalRef) == "" {
		return model.Profile{}, fmt.Errorf("catalog: %w - username and external ref are required", auctionerrors.ErrInvalidArgument)
	}

	p := model.Profile{
		UserID:      utils.GenerateID(),
		Username:    username,
		ExternalRef: externalRef,
		Email:       email,
	}
	if err := s.store.CreateProfile(p); err != nil {
		return model.Profile{}, fmt.Errorf("catalog: register profile: %w", err)
	}
	return p, nil
}

// GetProfile returns the profile with the given username.
func (s *CatalogService) GetProfile(username string) (model.Profile, error) {
	p, err := s.store.GetProfileByUsername(username)
	if err != nil {
		return model.Profile{}, fmt.Errorf("catalog: get profile: %w", err)
	}
	return p, nil
}

// SubmitCard records a card submitted by its owner. The card starts
// unvalidated; only the verification collaborator flips the flag.
func (s *CatalogService) SubmitCard(callerRef, cardName, cardQuality, imageURL string) (model.Card, error) {
	owner, err := s.resolver.ResolveProfile(callerRef)
	if err != nil {
		return model.Card{}, fmt.Errorf("catalog: submit card: %w", err)
	}
	if strings.TrimSpace(cardName) == "" {
		return model.Card{}, fmt.Errorf("catalog: %w - card name is required", auctionerrors.ErrInvalidArgument)
	}
	if cardQuality == "" {
		cardQuality = defaultCardQuality
	}

	c := model.Card{
		CardID:      utils.GenerateID(),
		OwnerID:     owner.UserID,
		CardName:    cardName,
		CardQuality: cardQuality,
		IsValidated: false,
		ImageURL:    imageURL,
	}
	if err := s.store.CreateCard(c); err != nil {
		return model.Card{}, fmt.Errorf("catalog: submit card: %w", err)
	}
	return c, nil
}

// UpdateCard lets the owner edit a card. Any edit resets the validation
// flag; the card must pass verification again before it can be auctioned.
func (s *CatalogService) UpdateCard(callerRef, cardID, cardName, cardQuality, imageURL string) (model.Card, error) {
	owner, err := s.resolver.ResolveProfile(callerRef)
	if err != nil {
		return model.Card{}, fmt.Errorf("catalog: update card: %w", err)
	}

	c, err := s.store.GetCard(cardID)
	if err != nil {
		return model.Card{}, fmt.Errorf("catalog: update card: %w", err)
	}
	if c.OwnerID != owner.UserID {
		return model.Card{}, fmt.Errorf("catalog: %w - only the owner may edit a card", auctionerrors.ErrPermissionDenied)
	}
	if strings.TrimSpace(cardName) == "" {
		return model.Card{}, fmt.Errorf("catalog: %w - card name is required", auctionerrors.ErrInvalidArgument)
	}
	if cardQuality == "" {
		cardQuality = defaultCardQuality
	}

	c.CardName = cardName
	c.CardQuality = cardQuality
	c.ImageURL = imageURL
	c.IsValidated = false
	if err := s.store.UpdateCard(c); err != nil {
		return model.Card{}, fmt.Errorf("catalog: update card: %w", err)
	}
	return c, nil
}

// SetCardValidated is the verification collaborator's hook; it touches
// nothing but the flag.
func (s *CatalogService) SetCardValidated(cardID string, validated bool) (model.Card, error) {
	c, err := s.store.GetCard(cardID)
	if err != nil {
		return model.Card{}, fmt.Errorf("catalog: validate card: %w", err)
	}

	c.IsValidated = validated
	if err := s.store.UpdateCard(c); err != nil {
		return model.Card{}, fmt.Errorf("catalog: validate card: %w", err)
	}
	return c, nil
}

// DeleteCard removes a card the caller owns, unless an auction in any
// state still references it.
func (s *CatalogService) DeleteCard(callerRef, cardID string) error {
	owner, err := s.resolver.ResolveProfile(callerRef)
	if err != nil {
		return fmt.Errorf("catalog: delete card: %w", err)
	}

	c, err := s.store.GetCard(cardID)
	if err != nil {
		return fmt.Errorf("catalog: delete card: %w", err)
	}
	if c.OwnerID != owner.UserID {
		return fmt.Errorf("catalog: %w - only the owner may delete a card", auctionerrors.ErrPermissionDenied)
	}

	n, err := s.store.CountAuctionsForCard(cardID)
	if err != nil {
		return fmt.Errorf("catalog: delete card: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("catalog: %w - card %s is referenced by %d auction(s)", auctionerrors.ErrConflict, cardID, n)
	}

	if err := s.store.DeleteCard(cardID); err != nil {
		return fmt.Errorf("catalog: delete card: %w", err)
	}
	return nil
}

// ListMyCards returns all cards the caller owns.
func (s *CatalogService) ListMyCards(callerRef string) ([]model.Card, error) {
	owner, err := s.resolver.ResolveProfile(callerRef)
	if err != nil {
		return nil, fmt.Errorf("catalog: list cards: %w", err)
	}
	cards, err := s.store.ListCardsByOwner(owner.UserID)
	if err != nil {
		return nil, fmt.Errorf("catalog: list cards: %w", err)
	}
	if cards == nil {
		cards = []model.Card{}
	}
	return cards, nil
}

// ListMyNotifications returns the caller's notification feed, newest first.
func (s *CatalogService) ListMyNotifications(callerRef string) ([]model.Notification, error) {
	receiver, err := s.resolver.ResolveProfile(callerRef)
	if err != nil {
		return nil, fmt.Errorf("catalog: list notifications: %w", err)
	}
	notifications, err := s.store.ListNotificationsByReceiver(receiver.UserID)
	if err != nil {
		return nil, fmt.Errorf("catalog: list notifications: %w", err)
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}
	return notifications, nil
}

// MarkNotificationsRead flips the read flag on the caller's unread
// notifications.
func (s *CatalogService) MarkNotificationsRead(callerRef string) error {
	receiver, err := s.resolver.ResolveProfile(callerRef)
	if err != nil {
		return fmt.Errorf("catalog: mark notifications read: %w", err)
	}
	if err := s.store.MarkAllNotificationsRead(receiver.UserID); err != nil {
		return fmt.Errorf("catalog: mark notifications read: %w", err)
	}
	return nil
}
