package postgres

import (
	"database/sql"
)

// BanRepo implements repository.BanRepository
type BanRepo struct {
	db *sql.DB
}

// NewBanRepo creates a new ban repository
func NewBanRepo(db *sql.DB) *BanRepo {
	return &BanRepo{db: db}
}

// IsBanned checks if user is banned
func (r *BanRepo) IsBanned(userID int64) (bool, error) {
	var one int
	query := `SELECT 1 FROM banned WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&one)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// Ban marks a user banned; banning twice is a no-op
func (r *BanRepo) Ban(userID int64) error {
	query := `
		INSERT INTO banned (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// Unban removes the ban mark for a user
func (r *BanRepo) Unban(userID int64) error {
	query := `DELETE FROM banned WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}
