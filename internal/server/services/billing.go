package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rwi001/Valentine-Funs/internal/common"
	"github.com/rwi001/Valentine-Funs/internal/logging"
	"github.com/rwi001/Valentine-Funs/internal/server/config"
	"github.com/rwi001/Valentine-Funs/internal/server/gateway"
	"github.com/rwi001/Valentine-Funs/internal/server/models"
	"github.com/rwi001/Valentine-Funs/internal/server/repositories/payments"
	"github.com/rwi001/Valentine-Funs/internal/server/repositories/users"
)

// BillingService creates gateway orders and validates payment callbacks.
// A nil ledger means no gateway credentials are configured; order ids are
// synthesized and every verification is accepted. That mock-accept policy
// is for development only and is logged loudly on every use.
type BillingService struct {
	users    users.Repository
	payments payments.Repository
	ledger   gateway.Ledger
	logger   logging.Logger

	// settleAmount is recorded on every verified payment, independent of
	// the amount any order was created for.
	settleAmount int64
	currency     string

	now func() time.Time
}

func NewBillingService(u users.Repository, p payments.Repository, ledger gateway.Ledger, cfg *config.Config, logger logging.Logger) *BillingService {
	return &BillingService{
		users:        u,
		payments:     p,
		ledger:       ledger,
		logger:       logger.With("module", "billing"),
		settleAmount: cfg.UnlockAmount,
		currency:     cfg.Currency,
		now:          time.Now,
	}
}

// CreateOrder returns the gateway order and whether it is a mock.
func (s *BillingService) CreateOrder(ctx context.Context, amountMinor int64) (*gateway.Order, bool, error) {
	if s.ledger == nil {
		order := &gateway.Order{
			ID:       fmt.Sprintf("order_mock_%d", s.now().UnixMilli()),
			Amount:   amountMinor,
			Currency: s.currency,
			Status:   "created",
		}
		s.logger.Info(ctx, "mock order created", "order_id", order.ID, "amount", amountMinor)
		return order, true, nil
	}

	receipt := "rcpt_" + uuid.NewString()

	order, err := s.ledger.CreateOrder(ctx, amountMinor, s.currency, receipt)
	if err != nil {
		s.logger.Error(ctx, "order creation failed", "error", err.Error())
		return nil, false, fmt.Errorf("%w: %v", common.ErrorGateway, err)
	}

	s.logger.Info(ctx, "order created", "order_id", order.ID, "amount", order.Amount)
	return order, false, nil
}

// VerifyPayment validates the callback signature and, on acceptance,
// persists one Payment at the fixed settlement amount and flips the
// user's paymentStatus to success. Nothing is persisted on rejection.
func (s *BillingService) VerifyPayment(ctx context.Context, orderID, paymentID, signature, email string) error {
	if orderID == "" || paymentID == "" || email == "" {
		return fmt.Errorf("%w: order id, payment id and email are required", common.ErrorValidation)
	}

	if s.ledger != nil {
		expected := SignPayload(orderID, paymentID, s.ledger.Secret())
		if !hmac.Equal([]byte(expected), []byte(signature)) {
			s.logger.Warn(ctx, "payment signature mismatch", "order_id", orderID, "email", email)
			return common.ErrorSignatureMismatch
		}
	} else {
		s.logger.Warn(ctx, "gateway not configured, accepting payment without verification; unsafe outside development",
			"order_id", orderID, "email", email)
	}

	payment := &models.Payment{
		OrderID:   orderID,
		PaymentID: paymentID,
		Amount:    s.settleAmount,
		Status:    models.PaymentSuccess,
		Email:     email,
		Date:      s.now().UTC(),
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return err
	}

	status := models.PaymentStatusSuccess
	if _, err := s.users.Upsert(ctx, email, users.Patch{PaymentStatus: &status}); err != nil {
		return err
	}

	s.logger.Info(ctx, "payment verified", "order_id", orderID, "payment_id", paymentID, "email", email)
	return nil
}

// SignPayload computes the hex HMAC-SHA256 the gateway sends back:
// key = shared secret, message = orderID + "|" + paymentID.
func SignPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
