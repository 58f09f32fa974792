package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/okian/podium/internal/domain/metric"
	"github.com/okian/podium/internal/domain/model"
)

// Board implements Store with an in-memory slice kept in rank order.
//
// The set is small (one entry per team) and every mutation re-ranks the
// whole set, so a sorted slice with a full stable re-sort per mutation is
// both the simplest and the semantically exact structure: ties must keep
// their relative insertion order, which sort.SliceStable guarantees.
type Board struct {
	mu       sync.RWMutex
	truth    model.GroundTruth
	subs     []model.Submission // rank order after every mutation
	metricID string
}

// Option applies a configuration option to the Board.
type Option func(*Board)

// WithSelectedMetric sets the initial ranking metric. Unknown ids are
// ignored and the default stands.
func WithSelectedMetric(id string) Option {
	return func(b *Board) {
		if _, ok := metric.ByID(id); ok {
			b.metricID = id
		}
	}
}

// NewBoard creates an empty board ranking by the default metric.
func NewBoard(opts ...Option) *Board {
	b := &Board{
		metricID: metric.DefaultID,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Hydrate replaces the whole state and re-ranks.
func (b *Board) Hydrate(ctx context.Context, truth model.GroundTruth, subs []model.Submission, metricID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if metricID != "" {
		if _, ok := metric.ByID(metricID); !ok {
			return ErrUnknownMetric
		}
		b.metricID = metricID
	}
	b.truth = truth
	b.subs = append([]model.Submission(nil), subs...)
	b.rerank()
	return nil
}

// SetGroundTruth replaces the truth and clears all submissions.
func (b *Board) SetGroundTruth(ctx context.Context, truth model.GroundTruth) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.truth = truth
	b.subs = nil
}

// Truth returns a copy of the current ground truth, nil when unset.
func (b *Board) Truth(ctx context.Context) model.GroundTruth {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.truth == nil {
		return nil
	}
	return append(model.GroundTruth(nil), b.truth...)
}

// Upsert replaces any same-team entry, appends sub, and re-ranks.
func (b *Board) Upsert(ctx context.Context, sub model.Submission) ([]model.Submission, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.subs[:0]
	for _, s := range b.subs {
		if s.TeamName != sub.TeamName {
			kept = append(kept, s)
		}
	}
	b.subs = append(kept, sub)
	b.rerank()
	return b.snapshot(), nil
}

// SwitchMetric changes the ranking metric and re-ranks without rescoring.
func (b *Board) SwitchMetric(ctx context.Context, metricID string) ([]model.Submission, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := metric.ByID(metricID); !ok {
		return nil, ErrUnknownMetric
	}
	b.metricID = metricID
	b.rerank()
	return b.snapshot(), nil
}

// SelectedMetric returns the id of the metric driving ranking.
func (b *Board) SelectedMetric(ctx context.Context) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.metricID
}

// Ranked returns the submission set in rank order.
func (b *Board) Ranked(ctx context.Context) []model.Submission {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshot()
}

// Count returns the number of stored submissions.
func (b *Board) Count(ctx context.Context) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// rerank sorts by the selected metric and reassigns ranks 1..K.
// Must be called with b.mu held for writing.
func (b *Board) rerank() {
	def, ok := metric.ByID(b.metricID)
	if !ok {
		def, _ = metric.ByID(metric.DefaultID)
	}

	sort.SliceStable(b.subs, func(i, j int) bool {
		a, c := b.subs[i].Scores[def.ID], b.subs[j].Scores[def.ID]
		if def.HigherIsBetter {
			return a > c
		}
		return a < c
	})
	for i := range b.subs {
		b.subs[i].Rank = i + 1
	}
}

// snapshot copies the ranked set so callers cannot mutate board state.
// Must be called with b.mu held.
func (b *Board) snapshot() []model.Submission {
	return append([]model.Submission(nil), b.subs...)
}
