package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/daykeeper/internal/common"
	"github.com/dmitrijs2005/daykeeper/internal/dbx"
	"github.com/dmitrijs2005/daykeeper/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a user row. The email is stored exactly as given; callers
// normalize it beforehand. Passwords are stored as opaque strings.
func (r *SQLiteRepository) Create(ctx context.Context, user *models.User, password string) error {
	var avatar any
	if user.AvatarUrl != "" {
		avatar = user.AvatarUrl
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password, avatar_url)
		VALUES (?, ?, ?, ?, ?)`,
		user.Id, user.Name, user.Email, password, avatar)
	if err != nil {
		// the driver reports uniqueness violations only through the message text
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return common.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindByCredentials looks up a user by the exact email+password pair.
func (r *SQLiteRepository) FindByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, avatar_url FROM users
		WHERE email = ? AND password = ?`, email, password)

	var (
		user   models.User
		avatar sql.NullString
	)
	if err := row.Scan(&user.Id, &user.Name, &user.Email, &avatar); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	user.AvatarUrl = avatar.String
	return &user, nil
}
