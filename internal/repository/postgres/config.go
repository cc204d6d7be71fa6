package postgres

import (
	"database/sql"
)

// ConfigRepo implements repository.ConfigRepository
type ConfigRepo struct {
	db *sql.DB
}

// NewConfigRepo creates a new config repository
func NewConfigRepo(db *sql.DB) *ConfigRepo {
	return &ConfigRepo{db: db}
}

// Get returns the value for a key, or empty string when the key is unset
func (r *ConfigRepo) Get(key string) (string, error) {
	var value string
	query := `SELECT value FROM config WHERE key = $1`
	err := r.db.QueryRow(query, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

// Set upserts a config key
func (r *ConfigRepo) Set(key, value string) error {
	query := `
		INSERT INTO config (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value
	`
	_, err := r.db.Exec(query, key, value)
	return err
}
