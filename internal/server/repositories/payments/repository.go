package payments

import (
	"context"

	"github.com/rwi001/Valentine-Funs/internal/server/models"
)

// Repository is append-only: payments are never updated or deleted.
// No uniqueness is enforced on orderId/paymentId; duplicate submissions
// produce duplicate rows.
type Repository interface {
	Create(ctx context.Context, payment *models.Payment) error
}
