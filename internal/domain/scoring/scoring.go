// Package scoring turns raw submission files into scored Submissions.
package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/podium/internal/domain/metric"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/parse"
	"github.com/okian/podium/internal/domain/team"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithNow overrides the clock used to stamp submissions. Intended for tests.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDGenerator overrides the submission id generator. Intended for tests.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// Scorer scores one raw submission file against the current ground truth.
type Scorer interface {
	// Score parses raw CSV text and computes every registered metric.
	// It is a pure transform: no store mutation, no persistence.
	Score(ctx context.Context, raw, filename string, truth model.GroundTruth) (model.Submission, error)
}

// Engine implements Scorer over the fixed metric registry.
type Engine struct {
	now   func() time.Time
	newID func() string
}

// NewEngine creates a scoring engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score validates and scores one submission.
//
// Failure modes, in order: ErrNoGroundTruth when truth is unset,
// ErrInvalidNumericData when the CSV fails to parse, LengthMismatchError
// when the prediction count differs from the truth length. On any failure
// no Submission is produced.
func (e *Engine) Score(ctx context.Context, raw, filename string, truth model.GroundTruth) (model.Submission, error) {
	if err := ctx.Err(); err != nil {
		return model.Submission{}, fmt.Errorf("context cancelled: %w", err)
	}

	if !truth.Set() {
		return model.Submission{}, ErrNoGroundTruth
	}

	predictions, err := parse.Values(raw)
	if err != nil {
		return model.Submission{}, fmt.Errorf("%w: %w", ErrInvalidNumericData, err)
	}

	if len(predictions) != len(truth) {
		return model.Submission{}, &LengthMismatchError{Got: len(predictions), Want: len(truth)}
	}

	scores := make(model.Scores, len(metric.All()))
	for _, def := range metric.All() {
		scores[def.ID] = def.Calculate(predictions, truth)
	}

	return model.Submission{
		ID:              e.newID(),
		TeamName:        team.FromFilename(filename),
		Predictions:     predictions,
		Scores:          scores,
		PredictionCount: len(predictions),
		SubmitTime:      e.now(),
	}, nil
}
