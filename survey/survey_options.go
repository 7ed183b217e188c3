package survey

import (
	"runtime"

	"go.uber.org/zap"
)

type option struct {
	logger   *zap.Logger
	workers  int
	minFlips int
	maxFlips int
}

func applyOpts(options ...OptionFunc) *option {
	opts := &option{
		logger:   zap.NewNop(),
		workers:  runtime.NumCPU(),
		minFlips: 0,
		maxFlips: MaxFlips,
	}
	for _, opt := range options {
		opt(opts)
	}
	return opts
}

type OptionFunc func(*option)

func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) {
		o.logger = logger
	}
}

// WithWorkers bounds the number of flip counts surveyed concurrently.
func WithWorkers(n int) OptionFunc {
	return func(o *option) {
		o.workers = n
	}
}

// WithFlipRange restricts the survey to flip counts in [from, to].
func WithFlipRange(from, to int) OptionFunc {
	return func(o *option) {
		o.minFlips = from
		o.maxFlips = to
	}
}
