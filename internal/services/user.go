package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/daykeeper/internal/common"
	"github.com/dmitrijs2005/daykeeper/internal/logging"
	"github.com/dmitrijs2005/daykeeper/internal/models"
	"github.com/dmitrijs2005/daykeeper/internal/repositories/users"
	"github.com/google/uuid"
)

// UserService defines local registration and login. The service is stateless
// with respect to sessions; the application layer owns the session.
type UserService interface {
	// Register creates a new user. The email is normalized to lowercase
	// before the insert; a duplicate surfaces as common.ErrEmailTaken.
	Register(ctx context.Context, name, email, password string) (*models.User, error)

	// Login returns the user matching the normalized email and password, or
	// common.ErrInvalidCredentials when nothing matches.
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type userService struct {
	db        *sql.DB
	persister Persister
	log       logging.Logger
}

// NewUserService constructs a UserService over the given DB handle and
// durable persister.
func NewUserService(db *sql.DB, persister Persister, log logging.Logger) UserService {
	return &userService{db: db, persister: persister, log: log}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	user := &models.User{
		Id:    uuid.NewString(),
		Name:  name,
		Email: normalizeEmail(email),
	}

	repo := users.NewSQLiteRepository(s.db)
	if err := repo.Create(ctx, user, password); err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("registration error: %w", err)
	}

	s.persister.Persist(ctx)
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*models.User, error) {
	repo := users.NewSQLiteRepository(s.db)

	user, err := repo.FindByCredentials(ctx, normalizeEmail(email), password)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login error: %w", err)
	}
	return user, nil
}
