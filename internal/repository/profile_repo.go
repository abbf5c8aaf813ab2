package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"card-auction/internal/auctionerrors"
	model "card-auction/internal/models"
)

// CreateProfile inserts a new profile row
func (r *SQLRepo) CreateProfile(p model.Profile) error {
	_, err := r.db.Exec(`
		INSERT INTO profiles(user_id, username, external_ref, email, rating_count, rating_avg)
		VALUES(?,?,?,?,?,?)`,
		p.UserID, p.Username, p.ExternalRef, p.Email, p.RatingCount, p.RatingAvg)
	return mapWriteError(fmt.Sprintf("create profile %s", p.Username), err)
}

// GetProfileByID returns the profile with the given user id
func (r *SQLRepo) GetProfileByID(userID string) (model.Profile, error) {
	var p model.Profile
	err := r.db.Get(&p, `SELECT * FROM profiles WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, fmt.Errorf("repository: profile %s: %w", userID, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("repository: get profile %s: %w", userID, err)
	}
	return p, nil
}

// GetProfileByRef returns the profile matching an external identity reference
func (r *SQLRepo) GetProfileByRef(externalRef string) (model.Profile, error) {
	var p model.Profile
	err := r.db.Get(&p, `SELECT * FROM profiles WHERE external_ref = ?`, externalRef)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, fmt.Errorf("repository: profile ref %s: %w", externalRef, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("repository: get profile ref %s: %w", externalRef, err)
	}
	return p, nil
}

// GetProfileByUsername returns the profile with the given username
func (r *SQLRepo) GetProfileByUsername(username string) (model.Profile, error) {
	var p model.Profile
	err := r.db.Get(&p, `SELECT * FROM profiles WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, fmt.Errorf("repository: profile %s: %w", username, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("repository: get profile %s: %w", username, err)
	}
	return p, nil
}

// ApplySellerRating folds one rating into the profile's aggregate in a
// single statement, so concurrent ratings cannot lose an update.
func (r *SQLRepo) ApplySellerRating(userID string, rating int) error {
	res, err := r.db.Exec(`
		UPDATE profiles
		SET rating_avg = (rating_avg * rating_count + ?) / (rating_count + 1.0),
		    rating_count = rating_count + 1
		WHERE user_id = ?`,
		rating, userID)
	if err != nil {
		return fmt.Errorf("repository: apply rating for %s: %w", userID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("repository: profile %s: %w", userID, auctionerrors.ErrNotFound)
	}
	return nil
}
