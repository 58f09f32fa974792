// Package repository defines the submission store interface and errors.
package repository

import (
	"context"

	"github.com/okian/podium/internal/domain/model"
)

// Store provides read/write access to the competition state: the ground
// truth, the one-per-team submission set, and the selected ranking metric.
type Store interface {
	// Hydrate replaces the whole state in one step, typically from
	// persisted data at startup, and re-ranks the submission set.
	Hydrate(ctx context.Context, truth model.GroundTruth, subs []model.Submission, metricID string) error

	// SetGroundTruth replaces the ground truth and clears the submission
	// set. Existing submissions have no valid basis for comparison once
	// the truth changes.
	SetGroundTruth(ctx context.Context, truth model.GroundTruth)

	// Truth returns the current ground truth, nil when unset.
	Truth(ctx context.Context) model.GroundTruth

	// Upsert replaces any submission with the same team name, appends the
	// new one, and re-ranks the set under the selected metric. It returns
	// the ranked set.
	Upsert(ctx context.Context, sub model.Submission) ([]model.Submission, error)

	// SwitchMetric changes the selected ranking metric and re-ranks the
	// existing submissions without rescoring. Returns ErrUnknownMetric for
	// an unregistered id.
	SwitchMetric(ctx context.Context, metricID string) ([]model.Submission, error)

	// SelectedMetric returns the id of the metric driving ranking.
	SelectedMetric(ctx context.Context) string

	// Ranked returns the submission set in rank order.
	Ranked(ctx context.Context) []model.Submission

	// Count returns the number of stored submissions.
	Count(ctx context.Context) int
}
