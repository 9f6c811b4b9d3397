package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwi001/Valentine-Funs/internal/common"
	"github.com/rwi001/Valentine-Funs/internal/logging"
	"github.com/rwi001/Valentine-Funs/internal/server/auth"
	"github.com/rwi001/Valentine-Funs/internal/server/config"
	"github.com/rwi001/Valentine-Funs/internal/server/repositories/users"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeNotifier struct {
	lastTo   string
	lastCode string
	calls    int

	delivered bool
	err       error
}

func (f *fakeNotifier) Deliver(ctx context.Context, to string, code string) (bool, error) {
	f.calls++
	f.lastTo = to
	f.lastCode = code
	if f.err != nil {
		return false, f.err
	}
	return f.delivered, nil
}

type otpFixture struct {
	svc      *OTPService
	repo     *users.MemoryRepository
	notifier *fakeNotifier
	now      time.Time
}

func newOTPFixture(t *testing.T, codes ...string) *otpFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	f := &otpFixture{
		repo:     users.NewMemoryRepository(),
		notifier: &fakeNotifier{delivered: true},
		now:      time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewOTPService(f.repo, f.notifier, cfg, testLogger())
	f.svc.now = func() time.Time { return f.now }

	if len(codes) > 0 {
		queue := append([]string(nil), codes...)
		f.svc.generate = func() (string, error) {
			code := queue[0]
			if len(queue) > 1 {
				queue = queue[1:]
			}
			return code, nil
		}
	}

	return f
}

// ---- Issue ----

func TestIssue_RequiresEmail(t *testing.T) {
	f := newOTPFixture(t)

	_, err := f.svc.Issue(context.Background(), "")
	require.True(t, errors.Is(err, common.ErrorValidation))
	assert.Zero(t, f.notifier.calls)
}

func TestIssue_StoresCodeAndDelivers(t *testing.T) {
	f := newOTPFixture(t, "123456")
	ctx := context.Background()

	delivered, err := f.svc.Issue(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, delivered)
	assert.Equal(t, "a@x.com", f.notifier.lastTo)
	assert.Equal(t, "123456", f.notifier.lastCode)

	user, err := f.repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user.OTP)
	assert.Equal(t, "123456", *user.OTP)
	require.NotNil(t, user.OTPExpires)
	assert.Equal(t, f.now.Add(10*time.Minute), *user.OTPExpires)
}

func TestIssue_SecondCodeInvalidatesFirst(t *testing.T) {
	f := newOTPFixture(t, "111111", "222222")
	ctx := context.Background()

	_, err := f.svc.Issue(ctx, "a@x.com")
	require.NoError(t, err)
	_, err = f.svc.Issue(ctx, "a@x.com")
	require.NoError(t, err)

	// Only the second code is live.
	_, err = f.svc.Verify(ctx, "a@x.com", "111111")
	require.True(t, errors.Is(err, common.ErrorInvalidOTP))

	token, err := f.svc.Verify(ctx, "a@x.com", "222222")
	require.NoError(t, err)
	assert.Equal(t, MockToken, token)
}

func TestIssue_NotifierFailure(t *testing.T) {
	f := newOTPFixture(t, "123456")
	f.notifier.err = errors.New("smtp down")

	_, err := f.svc.Issue(context.Background(), "a@x.com")
	require.Error(t, err)
}

func TestGenerateCode_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.GreaterOrEqual(t, code, "100000")
		require.LessOrEqual(t, code, "999999")
	}
}

// ---- Verify ----

func TestVerify_UnknownEmail(t *testing.T) {
	f := newOTPFixture(t)

	_, err := f.svc.Verify(context.Background(), "nobody@x.com", "123456")
	require.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestVerify_RequiresInput(t *testing.T) {
	f := newOTPFixture(t)

	_, err := f.svc.Verify(context.Background(), "", "123456")
	require.True(t, errors.Is(err, common.ErrorValidation))

	_, err = f.svc.Verify(context.Background(), "a@x.com", "")
	require.True(t, errors.Is(err, common.ErrorValidation))
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	ctx := context.Background()
	issued := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	expiry := issued.Add(10 * time.Minute)

	t.Run("one second before expiry accepts", func(t *testing.T) {
		f := newOTPFixture(t, "123456")
		f.now = issued
		_, err := f.svc.Issue(ctx, "a@x.com")
		require.NoError(t, err)

		f.now = expiry.Add(-time.Second)
		_, err = f.svc.Verify(ctx, "a@x.com", "123456")
		require.NoError(t, err)
	})

	t.Run("exactly at expiry rejects", func(t *testing.T) {
		f := newOTPFixture(t, "123456")
		f.now = issued
		_, err := f.svc.Issue(ctx, "a@x.com")
		require.NoError(t, err)

		f.now = expiry
		_, err = f.svc.Verify(ctx, "a@x.com", "123456")
		require.True(t, errors.Is(err, common.ErrorInvalidOTP))
	})

	t.Run("one second after expiry rejects", func(t *testing.T) {
		f := newOTPFixture(t, "123456")
		f.now = issued
		_, err := f.svc.Issue(ctx, "a@x.com")
		require.NoError(t, err)

		f.now = expiry.Add(time.Second)
		_, err = f.svc.Verify(ctx, "a@x.com", "123456")
		require.True(t, errors.Is(err, common.ErrorInvalidOTP))
	})
}

func TestVerify_SingleUse(t *testing.T) {
	f := newOTPFixture(t, "042918")
	ctx := context.Background()

	_, err := f.svc.Issue(ctx, "a@x.com")
	require.NoError(t, err)

	token, err := f.svc.Verify(ctx, "a@x.com", "042918")
	require.NoError(t, err)
	assert.Equal(t, "mock-jwt-token", token)

	// The stored code was cleared; replaying the correct code fails.
	_, err = f.svc.Verify(ctx, "a@x.com", "042918")
	require.True(t, errors.Is(err, common.ErrorInvalidOTP))

	user, err := f.repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.Nil(t, user.OTP)
	assert.Nil(t, user.OTPExpires)
}

func TestVerify_WrongAttemptKeepsCodeLive(t *testing.T) {
	f := newOTPFixture(t, "123456")
	ctx := context.Background()

	_, err := f.svc.Issue(ctx, "a@x.com")
	require.NoError(t, err)

	_, err = f.svc.Verify(ctx, "a@x.com", "000000")
	require.True(t, errors.Is(err, common.ErrorInvalidOTP))

	// No lockout: the correct code still verifies afterwards.
	_, err = f.svc.Verify(ctx, "a@x.com", "123456")
	require.NoError(t, err)
}

func TestVerify_SignsTokenWhenSecretConfigured(t *testing.T) {
	f := newOTPFixture(t, "123456")
	f.svc.secret = []byte("signing-secret")
	ctx := context.Background()

	_, err := f.svc.Issue(ctx, "a@x.com")
	require.NoError(t, err)

	token, err := f.svc.Verify(ctx, "a@x.com", "123456")
	require.NoError(t, err)
	require.NotEqual(t, MockToken, token)

	email, err := auth.GetEmailFromToken(token, []byte("signing-secret"))
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}
