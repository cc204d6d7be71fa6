package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_AddUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	userID := int64(123)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.AddUser(userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_AddUser_AlreadyExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	userID := int64(123)

	// ON CONFLICT DO NOTHING affects zero rows for known users
	mock.ExpectExec("INSERT INTO users").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.AddUser(userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_CountUsers(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountUsers()

	assert.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_ListUserIDs(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		offset   int
		rows     *sqlmock.Rows
		expected []int64
	}{
		{
			name:     "full page",
			limit:    3,
			offset:   0,
			rows:     sqlmock.NewRows([]string{"user_id"}).AddRow(1).AddRow(2).AddRow(3),
			expected: []int64{1, 2, 3},
		},
		{
			name:     "empty page past the end",
			limit:    3,
			offset:   9,
			rows:     sqlmock.NewRows([]string{"user_id"}),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			mock.ExpectQuery("SELECT user_id FROM users ORDER BY user_id").
				WithArgs(tt.limit, tt.offset).
				WillReturnRows(tt.rows)

			ids, err := repo.ListUserIDs(tt.limit, tt.offset)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ids)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
