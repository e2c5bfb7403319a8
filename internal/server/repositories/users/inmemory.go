package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookshop/internal/common"
	"github.com/dmitrijs2005/bookshop/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps users in a mutex-guarded map keyed by username.
// The map is never handed out; all reads and writes return copies.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*models.User)}
}

// Create performs the check-then-insert under a single lock so that two
// concurrent registrations of the same username cannot both succeed.
// The password hash must already be computed by the caller; no expensive
// work happens inside the critical section.
func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := &models.User{
		ID:           uuid.NewString(),
		UserName:     user.UserName,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now(),
	}
	r.users[stored.UserName] = stored

	out := *stored
	return &out, nil
}

func (r *InMemoryRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[login]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := *user
	return &out, nil
}
