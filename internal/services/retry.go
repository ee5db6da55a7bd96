package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

const (
	defaultMaxAttempts  = 5
	defaultInitialDelay = 1 * time.Second
)

// Invoker turns a prompt into raw model text. An empty result means "no
// output" and callers fall back.
type Invoker interface {
	Invoke(ctx context.Context, prompt string, params GenerationParams) string
}

// sleepFunc waits for d or until ctx is done.
type sleepFunc func(ctx context.Context, d time.Duration) error

// RemoteInvoker retries capacity errors with exponential backoff and swallows
// every other failure. Each capacity error is followed by its backoff, the last
// one included, so five failures block for 1+2+4+8+16 initial delays.
type RemoteInvoker struct {
	gemini       GeminiService
	maxAttempts  int
	initialDelay time.Duration
	sleep        sleepFunc
	logger       *zap.Logger
}

func NewRemoteInvoker(gemini GeminiService, maxAttempts int, initialDelay time.Duration, logger *zap.Logger) *RemoteInvoker {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if initialDelay <= 0 {
		initialDelay = defaultInitialDelay
	}

	return &RemoteInvoker{
		gemini:       gemini,
		maxAttempts:  maxAttempts,
		initialDelay: initialDelay,
		sleep:        sleepContext,
		logger:       logger,
	}
}

// Invoke implements Invoker.
func (r *RemoteInvoker) Invoke(ctx context.Context, prompt string, params GenerationParams) string {
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		text, err := r.gemini.GenerateText(ctx, prompt, params)
		if err == nil {
			return text
		}

		if !errors.Is(err, ErrTransientCapacity) {
			r.logger.Warn("❌ Gemini call failed, using fallback",
				requestField(ctx),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			return ""
		}

		delay := r.backoff(attempt)
		r.logger.Warn("⚠️ Gemini capacity exhausted, backing off",
			requestField(ctx),
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", r.maxAttempts),
			zap.Duration("delay", delay),
		)

		if err := r.sleep(ctx, delay); err != nil {
			r.logger.Warn("🛑 Retry abandoned", requestField(ctx), zap.Error(err))
			return ""
		}
	}

	r.logger.Error("❌ Gemini capacity still exhausted, using fallback",
		requestField(ctx),
		zap.Int("attempts", r.maxAttempts),
	)
	return ""
}

func (r *RemoteInvoker) backoff(attempt int) time.Duration {
	return r.initialDelay * time.Duration(1<<uint(attempt))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
