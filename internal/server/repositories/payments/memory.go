package payments

import (
	"context"
	"sync"
	"time"

	"github.com/rwi001/Valentine-Funs/internal/server/models"
)

type MemoryRepository struct {
	mu       sync.Mutex
	payments []models.Payment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	r.payments = append(r.payments, *payment)
	return nil
}

// All returns a snapshot of the stored payments. Not part of the
// Repository interface; used by wiring code and tests.
func (r *MemoryRepository) All() []models.Payment {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Payment, len(r.payments))
	copy(out, r.payments)
	return out
}
