// Package services holds the core engines: OTP issuance/validation and
// payment order/verify. Both are backend-agnostic; the repository
// implementations behind them decide whether state is durable.
package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/rwi001/Valentine-Funs/internal/common"
	"github.com/rwi001/Valentine-Funs/internal/logging"
	"github.com/rwi001/Valentine-Funs/internal/server/auth"
	"github.com/rwi001/Valentine-Funs/internal/server/config"
	"github.com/rwi001/Valentine-Funs/internal/server/notifier"
	"github.com/rwi001/Valentine-Funs/internal/server/repositories/users"
)

// MockToken is returned from Verify when no signing secret is configured.
const MockToken = "mock-jwt-token"

type OTPService struct {
	repo          users.Repository
	notifier      notifier.Notifier
	logger        logging.Logger
	secret        []byte
	tokenValidity time.Duration
	otpValidity   time.Duration

	// generate and now are injectable for tests.
	generate func() (string, error)
	now      func() time.Time
}

func NewOTPService(repo users.Repository, n notifier.Notifier, cfg *config.Config, logger logging.Logger) *OTPService {
	return &OTPService{
		repo:          repo,
		notifier:      n,
		logger:        logger.With("module", "otp"),
		secret:        []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
		otpValidity:   cfg.OTPValidity,
		generate:      generateCode,
		now:           time.Now,
	}
}

// generateCode returns a uniformly random six-digit code, 100000-999999
// inclusive.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// Issue generates a fresh code for the email, overwriting any prior one,
// and hands it to the notifier. The returned flag reports whether the
// code was actually emailed (false means log-only delivery).
func (s *OTPService) Issue(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, fmt.Errorf("%w: email is required", common.ErrorValidation)
	}

	code, err := s.generate()
	if err != nil {
		return false, fmt.Errorf("otp generation: %w", err)
	}
	expires := s.now().Add(s.otpValidity)

	// Unconditional overwrite: at most one live code per user.
	if _, err := s.repo.Upsert(ctx, email, users.Patch{
		Code:        &code,
		CodeExpires: &expires,
	}); err != nil {
		return false, err
	}

	delivered, err := s.notifier.Deliver(ctx, email, code)
	if err != nil {
		s.logger.Error(ctx, "otp delivery failed", "email", email, "error", err.Error())
		return false, fmt.Errorf("otp delivery: %w", err)
	}

	s.logger.Info(ctx, "otp issued", "email", email, "delivered", delivered)
	return delivered, nil
}

// Verify checks the submitted code and, on success, marks the user
// verified, clears the stored code (single-use), and returns an access
// token. A failed attempt leaves the stored code untouched, so the same
// code stays valid until it expires.
func (s *OTPService) Verify(ctx context.Context, email string, code string) (string, error) {
	if email == "" || code == "" {
		return "", fmt.Errorf("%w: email and otp are required", common.ErrorValidation)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if user.OTP == nil || user.OTPExpires == nil ||
		*user.OTP != code || !s.now().Before(*user.OTPExpires) {
		return "", common.ErrorInvalidOTP
	}

	verified := true
	if _, err := s.repo.Upsert(ctx, email, users.Patch{
		Verified:  &verified,
		ClearCode: true,
	}); err != nil {
		return "", err
	}

	s.logger.Info(ctx, "otp verified", "email", email)
	return s.mintToken(email)
}

func (s *OTPService) mintToken(email string) (string, error) {
	if len(s.secret) == 0 {
		return MockToken, nil
	}
	return auth.GenerateToken(email, s.secret, s.tokenValidity)
}
