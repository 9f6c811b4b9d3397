package repomanager

import (
	"context"
	"strings"
	"time"

	"github.com/rwi001/Valentine-Funs/internal/logging"
)

const connectTimeout = 10 * time.Second

// Select picks the storage backend for the lifetime of the process.
//
// An empty DSN, or one still carrying template placeholders (an
// unresolved "<password>" segment and the like), selects the in-memory
// store without attempting a connection. Any other DSN is connected and
// pinged synchronously; readiness blocks until the outcome is known, so
// no request can race an in-flight connection attempt. On failure the
// in-memory store is selected for all subsequent operations.
func Select(ctx context.Context, dsn string, dbName string, logger logging.Logger) RepositoryManager {
	if IsPlaceholderDSN(dsn) {
		logger.Warn(ctx, "no usable mongo dsn configured, using in-memory storage; data will not survive a restart")
		return NewMemoryRepositoryManager()
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	m, err := NewMongoRepositoryManager(connectCtx, dsn, dbName)
	if err != nil {
		logger.Warn(ctx, "mongo unreachable, falling back to in-memory storage", "error", err.Error())
		return NewMemoryRepositoryManager()
	}

	logger.Info(ctx, "connected to mongo", "db", dbName)
	return m
}

// IsPlaceholderDSN reports whether the DSN is absent or still holds
// unresolved template credentials copied from a sample config.
func IsPlaceholderDSN(dsn string) bool {
	if strings.TrimSpace(dsn) == "" {
		return true
	}
	if strings.Contains(dsn, "<") && strings.Contains(dsn, ">") {
		return true
	}
	return strings.Contains(dsn, "your_mongodb_uri")
}
