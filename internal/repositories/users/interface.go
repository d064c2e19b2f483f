package users

import (
	"context"

	"github.com/dmitrijs2005/daykeeper/internal/models"
)

// Repository describes persistence operations for User rows.
// Implementations are backed by the local SQLite image.
type Repository interface {
	// Create inserts a new user row. A violated email uniqueness constraint
	// surfaces as common.ErrEmailTaken.
	Create(ctx context.Context, user *models.User, password string) error

	// FindByCredentials returns the user matching the exact email+password
	// pair, or common.ErrNotFound when no row matches.
	FindByCredentials(ctx context.Context, email, password string) (*models.User, error)
}
