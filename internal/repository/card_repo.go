package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"card-auction/internal/auctionerrors"
	model "card-auction/internal/models"
)

// CreateCard inserts a new card row
func (r *SQLRepo) CreateCard(c model.Card) error {
	_, err := r.db.Exec(`
		INSERT INTO cards(card_id, owner_id, card_name, card_quality, is_validated, image_url)
		VALUES(?,?,?,?,?,?)`,
		c.CardID, c.OwnerID, c.CardName, c.CardQuality, c.IsValidated, c.ImageURL)
	return mapWriteError(fmt.Sprintf("create card %s", c.CardID), err)
}

// GetCard returns the card with the given id
func (r *SQLRepo) GetCard(cardID string) (model.Card, error) {
	var c model.Card
	err := r.db.Get(&c, `SELECT * FROM cards WHERE card_id = ?`, cardID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Card{}, fmt.Errorf("repository: card %s: %w", cardID, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Card{}, fmt.Errorf("repository: get card %s: %w", cardID, err)
	}
	return c, nil
}

// UpdateCard overwrites the mutable card fields, including the validation flag
func (r *SQLRepo) UpdateCard(c model.Card) error {
	res, err := r.db.Exec(`
		UPDATE cards SET card_name = ?, card_quality = ?, is_validated = ?, image_url = ?
		WHERE card_id = ?`,
		c.CardName, c.CardQuality, c.IsValidated, c.ImageURL, c.CardID)
	if err != nil {
		return fmt.Errorf("repository: update card %s: %w", c.CardID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("repository: card %s: %w", c.CardID, auctionerrors.ErrNotFound)
	}
	return nil
}

// DeleteCard removes a card row
func (r *SQLRepo) DeleteCard(cardID string) error {
	res, err := r.db.Exec(`DELETE FROM cards WHERE card_id = ?`, cardID)
	if err != nil {
		return mapWriteError(fmt.Sprintf("delete card %s", cardID), err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("repository: card %s: %w", cardID, auctionerrors.ErrNotFound)
	}
	return nil
}

// ListCardsByOwner returns all cards owned by a user
func (r *SQLRepo) ListCardsByOwner(ownerID string) ([]model.Card, error) {
	var out []model.Card
	err := r.db.Select(&out, `SELECT * FROM cards WHERE owner_id = ? ORDER BY card_name`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("repository: list cards for %s: %w", ownerID, err)
	}
	return out, nil
}

// CountAuctionsForCard counts auctions in any state referencing a card
func (r *SQLRepo) CountAuctionsForCard(cardID string) (int, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM auctions WHERE card_id = ?`, cardID); err != nil {
		return 0, fmt.Errorf("repository: count auctions for card %s: %w", cardID, err)
	}
	return n, nil
}
