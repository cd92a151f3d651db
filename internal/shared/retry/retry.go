package retry

import (
	"context"
	"errors"
	"net"
	"time"

	"careflow-sync/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Config bounds the backoff loop. Delays double after each failed attempt
// (BaseDelay, 2*BaseDelay, ...), no jitter.
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
	}
}

// Do runs fn up to cfg.MaxAttempts times, sleeping with exponential backoff
// between attempts. Permanent errors are returned immediately; only
// transient failures are fed back into the loop.
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = time.Second
	}

	var lastErr error
	delay := cfg.BaseDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if Permanent(lastErr) {
			return lastErr
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}

	return lastErr
}

// Permanent reports whether retrying err can never succeed. Coded
// application errors, missing rows and constraint/validation failures are
// permanent; anything else (network faults, unknown store errors) is
// treated as transient and retried.
func Permanent(err error) bool {
	if err == nil {
		return false
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return true
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 22 = data exception, 23 = integrity constraint violation,
		// 42 = syntax/access rule violation. Retrying these re-runs the
		// same statement against the same data.
		if len(pgErr.Code) >= 2 {
			switch pgErr.Code[:2] {
			case "22", "23", "42":
				return true
			}
		}
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return false
	}

	return false
}
