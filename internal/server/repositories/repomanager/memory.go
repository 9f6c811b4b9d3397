package repomanager

import (
	"context"

	"github.com/rwi001/Valentine-Funs/internal/server/repositories/payments"
	"github.com/rwi001/Valentine-Funs/internal/server/repositories/users"
)

type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	payments *payments.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		payments: payments.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Payments() payments.Repository {
	return m.payments
}

func (m *MemoryRepositoryManager) Durable() bool {
	return false
}

func (m *MemoryRepositoryManager) Close(ctx context.Context) error {
	return nil
}
