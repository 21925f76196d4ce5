package retry

import (
	"context"
	"math/rand"
	"time"
)

type Config struct {
	MaxRetries    int
	BackoffFactor float64
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	Jitter        time.Duration
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxRetries:    4,
		BackoffFactor: 2.0,
		InitialDelay:  500 * time.Millisecond,
		MaxDelay:      10 * time.Second,
		Jitter:        100 * time.Millisecond,
	}
}

// Do runs op until it succeeds, retries are exhausted, or ctx is done.
func Do(ctx context.Context, cfg *Config, op func() error) error {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}

	var err error
	delay := cfg.InitialDelay
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if attempt == cfg.MaxRetries {
			return err
		}

		wait := delay + time.Duration(rnd.Float64()*float64(cfg.Jitter))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * cfg.BackoffFactor)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return err
}
