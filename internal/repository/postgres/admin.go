package postgres

import (
	"database/sql"
)

// AdminRepo implements repository.AdminRepository
type AdminRepo struct {
	db *sql.DB
}

// NewAdminRepo creates a new admin repository
func NewAdminRepo(db *sql.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

// IsAdmin checks if user is in the admin set
func (r *AdminRepo) IsAdmin(userID int64) (bool, error) {
	var one int
	query := `SELECT 1 FROM admins WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&one)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// AddAdmin adds a user to the admin set; repeated adds are no-ops
func (r *AdminRepo) AddAdmin(userID int64) error {
	query := `
		INSERT INTO admins (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// RemoveAdmin deletes a user from the admin set and reports whether a row
// was actually removed
func (r *AdminRepo) RemoveAdmin(userID int64) (bool, error) {
	query := `DELETE FROM admins WHERE user_id = $1`
	res, err := r.db.Exec(query, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
