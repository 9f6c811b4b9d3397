package users

import (
	"context"
	"time"

	"github.com/rwi001/Valentine-Funs/internal/server/models"
)

// Patch carries a partial update for Upsert. Nil fields are left
// untouched in the stored record; this merge-not-replace behavior is
// load-bearing, the OTP flow upserts disjoint field subsets and expects
// earlier fields to survive.
//
// ClearCode removes the stored code and its expiry together; they never
// exist independently.
type Patch struct {
	Code          *string
	CodeExpires   *time.Time
	Verified      *bool
	PaymentStatus *string
	ClearCode     bool
}

type Repository interface {
	// FindByEmail returns common.ErrorNotFound on a legitimate miss.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Upsert creates the user with defaults when missing, otherwise
	// merges the patch into the existing record. Returns the resulting
	// record.
	Upsert(ctx context.Context, email string, patch Patch) (*models.User, error)
}
