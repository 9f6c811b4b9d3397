// Package repomanager groups the per-entity repositories behind a single
// interface with two implementations: MongoDB for durable mode and an
// in-memory fallback. The backend is chosen exactly once at startup (see
// Select) and injected into services, so the engines stay backend-agnostic.
package repomanager

import (
	"context"

	"github.com/rwi001/Valentine-Funs/internal/server/repositories/payments"
	"github.com/rwi001/Valentine-Funs/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Payments() payments.Repository

	// Durable reports whether records survive a restart.
	Durable() bool

	Close(ctx context.Context) error
}
