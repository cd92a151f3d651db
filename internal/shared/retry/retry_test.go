package retry_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"careflow-sync/internal/shared/apperror"
	"careflow-sync/internal/shared/retry"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func fastConfig() retry.Config {
	return retry.Config{MaxAttempts: 3, BaseDelay: time.Millisecond}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fastConfig(), func(ctx context.Context) error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_TransientErrorRetriedUpToMaxAttempts(t *testing.T) {
	calls := 0
	transient := errors.New("connection reset by peer")
	err := retry.Do(context.Background(), fastConfig(), func(ctx context.Context) error {
		calls++
		return transient
	})
	assert.ErrorIs(t, err, transient)
	assert.Equal(t, 3, calls)
}

func TestDo_RecoversAfterTransientFailure(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fastConfig(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("timeout")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_PermanentErrorStopsImmediately(t *testing.T) {
	calls := 0
	permanent := apperror.New(apperror.CodeNotFound, "gone", 404)
	err := retry.Do(context.Background(), fastConfig(), func(ctx context.Context) error {
		calls++
		return permanent
	})
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := retry.Do(ctx, retry.Config{MaxAttempts: 3, BaseDelay: time.Minute}, func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("flaky")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestPermanent_Classification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"app error", apperror.New(apperror.CodeInvalidState, "disabled", 400), true},
		{"record not found", gorm.ErrRecordNotFound, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"data exception", &pgconn.PgError{Code: "22001"}, true},
		{"undefined table", &pgconn.PgError{Code: "42P01"}, true},
		{"pg connection failure", &pgconn.PgError{Code: "08006"}, false},
		{"net error", &net.DNSError{Err: "no such host"}, false},
		{"unknown error", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, retry.Permanent(tc.err))
		})
	}
}
