package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/commentbox/internal/analysis"
)

const (
	defaultProbeInterval = 500 * time.Millisecond
	maxBackoff           = 30 * time.Second
)

// HealthChecker is the part of the analysis client a probe needs.
type HealthChecker interface {
	Health(ctx context.Context) (*analysis.HealthResponse, error)
}

// WaitForAPI polls the health endpoint until it answers or ctx is done.
// Failed attempts back off exponentially from interval up to maxBackoff.
func WaitForAPI(ctx context.Context, client HealthChecker, interval time.Duration, logger *zap.Logger) (*analysis.HealthResponse, error) {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	failures := 0
	for {
		resp, err := client.Health(ctx)
		if err == nil {
			if failures > 0 {
				logger.Info("api reachable", zap.Int("attempts", failures+1))
			}
			return resp, nil
		}

		wait := calculateBackoff(failures, interval)
		failures++
		logger.Debug("api not ready",
			zap.Int("attempt", failures),
			zap.Duration("retry_in", wait),
			zap.Error(err),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("api not reachable after %d attempts: %w", failures, err)
		case <-timer.C:
		}
	}
}

// calculateBackoff doubles base once per failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
