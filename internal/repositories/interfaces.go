package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rahulvm/accountd/internal/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// AccountRepository owns the durable email -> account mapping. Implementations
// must enforce email uniqueness themselves; Create on a taken email returns
// ErrDuplicateEmail even when two requests race.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}

// ProfileCache is a read-side cache of public account profiles. It never holds
// password hashes and is never consulted for credential checks.
type ProfileCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Account, error)
	Set(ctx context.Context, account *models.Account) error
}
