// Package survey measures how well HDBool values survive bit flips, by applying
// every possible flip mask of a given weight to each canonical value.
package survey

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/hdbool"
	"github.com/spacemeshos/hdbool/flip"
)

// MaxFlips is the number of bits in an HDBool word.
const MaxFlips = 8

var ErrInvalidRange = errors.New("invalid flip range")

// Row holds the outcome of flipping Flips bits of Value in every possible way.
type Row struct {
	Value     hdbool.HDBool
	Flips     int
	Masks     int
	Recovered int
}

// Lost returns the number of masks after which Value decoded to the opposite boolean.
func (r Row) Lost() int {
	return r.Masks - r.Recovered
}

// Rate returns the fraction of masks Value survived.
func (r Row) Rate() float64 {
	if r.Masks == 0 {
		return 0
	}
	return float64(r.Recovered) / float64(r.Masks)
}

type Report struct {
	Rows []Row
}

// Tolerance returns the largest flip count for which every mask was recovered,
// for both values. It returns -1 if no surveyed flip count qualifies.
func (r *Report) Tolerance() int {
	tolerance := -1
	for _, row := range r.Rows {
		if row.Lost() > 0 {
			break
		}
		tolerance = row.Flips
	}
	return tolerance
}

var values = []hdbool.HDBool{hdbool.True, hdbool.False}

// Run surveys flip counts in the configured range. Rows are ordered by flip
// count, then true before false.
func Run(ctx context.Context, opts ...OptionFunc) (*Report, error) {
	options := applyOpts(opts...)
	logger := options.logger

	if options.minFlips < 0 || options.maxFlips > MaxFlips || options.minFlips > options.maxFlips {
		return nil, fmt.Errorf("%w: [%d, %d], expected within [0, %d]",
			ErrInvalidRange, options.minFlips, options.maxFlips, MaxFlips)
	}
	if options.workers < 1 {
		return nil, fmt.Errorf("invalid workers; expected: >= 1, given: %d", options.workers)
	}

	numCounts := options.maxFlips - options.minFlips + 1
	rows := make([]Row, numCounts*len(values))

	logger.Info("survey: starting",
		zap.Int("min_flips", options.minFlips),
		zap.Int("max_flips", options.maxFlips),
		zap.Int("workers", options.workers),
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(options.workers)
	for i := 0; i < numCounts; i++ {
		i := i
		k := options.minFlips + i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			masks := flip.Masks(k)
			for j, v := range values {
				rows[i*len(values)+j] = surveyValue(v, k, masks)
			}
			logger.Debug("survey: flip count done", zap.Int("flips", k), zap.Int("masks", len(masks)))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Rows: rows}
	logger.Info("survey: completed", zap.Int("rows", len(rows)), zap.Int("tolerance", report.Tolerance()))
	return report, nil
}

func surveyValue(v hdbool.HDBool, k int, masks []uint8) Row {
	row := Row{Value: v, Flips: k, Masks: len(masks)}
	for _, m := range masks {
		if flip.Mask(v, m).Bool() == v.Bool() {
			row.Recovered++
		}
	}
	return row
}
