package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rahulvm/accountd/internal/models"
)

// MemoryAccountRepository is an in-process AccountRepository used by tests and
// local development. It mirrors the postgres behavior that matters: email
// uniqueness is enforced at write time under a single lock, so concurrent
// registrations for one email admit at most one winner.
type MemoryAccountRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]models.Account
	byEmail map[string]uuid.UUID
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		byID:    make(map[uuid.UUID]models.Account),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *MemoryAccountRepository) Create(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[account.Email]; taken {
		return ErrDuplicateEmail
	}

	account.ID = uuid.New()
	account.CreatedAt = time.Now()
	r.byID[account.ID] = *account
	r.byEmail[account.Email] = account.ID
	return nil
}

func (r *MemoryAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &account, nil
}

func (r *MemoryAccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	account := r.byID[id]
	return &account, nil
}
