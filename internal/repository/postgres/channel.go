package postgres

import (
	"database/sql"
)

// ChannelRepo implements repository.ChannelRepository
type ChannelRepo struct {
	db *sql.DB
}

// NewChannelRepo creates a new forced-channel repository
func NewChannelRepo(db *sql.DB) *ChannelRepo {
	return &ChannelRepo{db: db}
}

// ListChannels returns all forced channels in lexicographic order
func (r *ChannelRepo) ListChannels() ([]string, error) {
	query := `SELECT username FROM force_channels ORDER BY username`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		channels = append(channels, name)
	}
	return channels, rows.Err()
}

// AddChannel adds a forced channel; adding twice is a no-op
func (r *ChannelRepo) AddChannel(name string) error {
	query := `
		INSERT INTO force_channels (username)
		VALUES ($1)
		ON CONFLICT (username) DO NOTHING
	`
	_, err := r.db.Exec(query, name)
	return err
}

// RemoveChannel deletes a forced channel
func (r *ChannelRepo) RemoveChannel(name string) error {
	query := `DELETE FROM force_channels WHERE username = $1`
	_, err := r.db.Exec(query, name)
	return err
}
