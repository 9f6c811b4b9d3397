package users

import (
	"context"
	"sync"
	"time"

	"github.com/rwi001/Valentine-Funs/internal/common"
	"github.com/rwi001/Valentine-Funs/internal/server/models"
)

// MemoryRepository is the non-durable fallback store. The mutex guards
// the read-modify-write inside Upsert; two concurrent OTP issuances for
// the same email must not lose an update.
type MemoryRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*models.User)}
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return cloneUser(user), nil
}

func (r *MemoryRepository) Upsert(ctx context.Context, email string, patch Patch) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		user = &models.User{
			Email:         email,
			PaymentStatus: models.PaymentStatusPending,
			CreatedAt:     time.Now().UTC(),
		}
		r.users[email] = user
	}

	if patch.Code != nil {
		user.OTP = patch.Code
	}
	if patch.CodeExpires != nil {
		user.OTPExpires = patch.CodeExpires
	}
	if patch.Verified != nil {
		user.IsVerified = *patch.Verified
	}
	if patch.PaymentStatus != nil {
		user.PaymentStatus = *patch.PaymentStatus
	}
	if patch.ClearCode {
		user.OTP = nil
		user.OTPExpires = nil
	}

	return cloneUser(user), nil
}

// cloneUser copies the record so callers cannot mutate the stored state
// behind the mutex.
func cloneUser(u *models.User) *models.User {
	c := *u
	if u.OTP != nil {
		code := *u.OTP
		c.OTP = &code
	}
	if u.OTPExpires != nil {
		exp := *u.OTPExpires
		c.OTPExpires = &exp
	}
	return &c
}
