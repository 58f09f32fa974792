// Package app provides the core service that implements the engine-facing
// API consumed by the presentation layer.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/podium/internal/adapters/persistence"
	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/auth"
	"github.com/okian/podium/internal/domain/metric"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/parse"
	"github.com/okian/podium/internal/domain/scoring"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Rejection reasons used as metric labels.
const (
	reasonNoGroundTruth  = "no_ground_truth"
	reasonInvalidNumeric = "invalid_numeric_data"
	reasonLengthMismatch = "length_mismatch"
)

// Service wires the board store, scoring engine, persistence bridge, and
// admin gate into the engine-facing API: SetGroundTruth, Submit,
// SelectMetric, Ranked. Every mutation persists synchronously in the same
// logical step; a failed operation leaves prior state untouched.
type Service struct {
	store  repository.Store
	bridge *persistence.Bridge
	gate   *auth.Gate
	scorer scoring.Scorer
	logger logger.Logger

	defaultMetric string

	// lastErr is the single current-error message: replaced by the next
	// operation's outcome, cleared on the next success.
	errMu   sync.Mutex
	lastErr string

	started bool
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets the board store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithBridge sets the persistence bridge.
func WithBridge(bridge *persistence.Bridge) Option {
	return func(s *Service) {
		if bridge != nil {
			s.bridge = bridge
		}
	}
}

// WithGate sets the admin gate.
func WithGate(gate *auth.Gate) Option {
	return func(s *Service) {
		if gate != nil {
			s.gate = gate
		}
	}
}

// WithScorer sets the scoring engine.
func WithScorer(scorer scoring.Scorer) Option {
	return func(s *Service) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithDefaultMetric sets the metric used when no selection is stored.
func WithDefaultMetric(id string) Option {
	return func(s *Service) {
		if _, ok := metric.ByID(id); ok {
			s.defaultMetric = id
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultMetric: metric.DefaultID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes missing components and hydrates state from the
// persistence bridge. Corrupted persisted data fails Start; it is not
// silently repaired.
func (s *Service) Start(ctx context.Context) error {
	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.bridge == nil {
		s.bridge = persistence.NewBridge(persistence.NewMemKV())
	}
	if s.gate == nil {
		s.gate = auth.NewGate(s.bridge)
	}
	if s.scorer == nil {
		s.scorer = scoring.NewEngine()
	}
	if s.store == nil {
		s.store = repository.NewBoard(repository.WithSelectedMetric(s.defaultMetric))
	}

	truth, _, err := s.bridge.LoadTruth(ctx)
	if err != nil {
		return fmt.Errorf("hydrate ground truth: %w", err)
	}
	subs, _, err := s.bridge.LoadSubmissions(ctx)
	if err != nil {
		return fmt.Errorf("hydrate submissions: %w", err)
	}
	metricID, found, err := s.bridge.LoadSelectedMetric(ctx)
	if err != nil {
		return fmt.Errorf("hydrate selected metric: %w", err)
	}
	if !found {
		metricID = s.defaultMetric
	}

	if err := s.store.Hydrate(ctx, truth, subs, metricID); err != nil {
		return fmt.Errorf("hydrate store: %w", err)
	}

	metrics.UpdateTruthSize(len(truth))
	metrics.UpdateTeamCount(s.store.Count(ctx))

	s.started = true
	s.logger.Info(ctx, "leaderboard engine started",
		logger.Int("groundTruthSize", len(truth)),
		logger.Int("teams", s.store.Count(ctx)),
		logger.String("selectedMetric", s.store.SelectedMetric(ctx)),
	)
	return nil
}

// SetGroundTruth parses csvText and replaces the ground truth. The whole
// submission set is cleared: existing entries have no valid basis for
// comparison against new targets. Returns the number of values loaded.
func (s *Service) SetGroundTruth(ctx context.Context, csvText string) (int, error) {
	values, err := parse.Values(csvText)
	if err != nil {
		err = fmt.Errorf("%w: %w", scoring.ErrInvalidNumericData, err)
		metrics.RecordSubmissionRejected(reasonInvalidNumeric)
		s.fail(ctx, "ground truth upload failed", err)
		return 0, err
	}

	s.store.SetGroundTruth(ctx, model.GroundTruth(values))

	if err := s.bridge.SaveTruth(ctx, model.GroundTruth(values)); err != nil {
		err = fmt.Errorf("persist ground truth: %w", err)
		s.fail(ctx, "persist failed", err)
		return 0, err
	}
	if err := s.bridge.SaveSubmissions(ctx, nil); err != nil {
		err = fmt.Errorf("persist cleared submissions: %w", err)
		s.fail(ctx, "persist failed", err)
		return 0, err
	}

	metrics.RecordTruthReset()
	metrics.UpdateTruthSize(len(values))
	metrics.UpdateTeamCount(0)
	s.clearError()

	s.logger.Info(ctx, "ground truth replaced, board cleared",
		logger.Int("values", len(values)),
	)
	return len(values), nil
}

// Submit scores one prediction file and upserts it by team name. A failed
// submission leaves the previously ranked table unchanged.
func (s *Service) Submit(ctx context.Context, csvText, filename string) error {
	start := time.Now()

	sub, err := s.scorer.Score(ctx, csvText, filename, s.store.Truth(ctx))
	metrics.RecordScoringLatency(time.Since(start).Seconds())
	if err != nil {
		metrics.RecordSubmissionRejected(rejectionReason(err))
		s.fail(ctx, "submission rejected", err, logger.String("filename", filename))
		return err
	}

	replaced := s.hasTeam(ctx, sub.TeamName)
	ranked, err := s.store.Upsert(ctx, sub)
	if err != nil {
		s.fail(ctx, "upsert failed", err, logger.String("team", sub.TeamName))
		return err
	}

	if err := s.bridge.SaveSubmissions(ctx, ranked); err != nil {
		err = fmt.Errorf("persist submissions: %w", err)
		s.fail(ctx, "persist failed", err, logger.String("team", sub.TeamName))
		return err
	}

	metrics.RecordSubmissionScored()
	if replaced {
		metrics.RecordTeamReplacement()
	}
	metrics.UpdateTeamCount(len(ranked))
	s.clearError()

	s.logger.Info(ctx, "submission scored",
		logger.String("team", sub.TeamName),
		logger.Int("predictions", sub.PredictionCount),
	)
	return nil
}

// SelectMetric changes the ranking metric and re-ranks without rescoring.
func (s *Service) SelectMetric(ctx context.Context, id string) error {
	ranked, err := s.store.SwitchMetric(ctx, id)
	if err != nil {
		s.fail(ctx, "metric switch failed", err, logger.String("metric", id))
		return err
	}

	if err := s.bridge.SaveSelectedMetric(ctx, id); err != nil {
		err = fmt.Errorf("persist selected metric: %w", err)
		s.fail(ctx, "persist failed", err, logger.String("metric", id))
		return err
	}
	if err := s.bridge.SaveSubmissions(ctx, ranked); err != nil {
		err = fmt.Errorf("persist submissions: %w", err)
		s.fail(ctx, "persist failed", err, logger.String("metric", id))
		return err
	}

	metrics.RecordMetricSwitch()
	s.clearError()
	return nil
}

// Ranked returns the submission set in rank order.
func (s *Service) Ranked(ctx context.Context) []model.Submission {
	return s.store.Ranked(ctx)
}

// Board returns presentation-ready rows with the selected metric's score
// formatted by its definition.
func (s *Service) Board(ctx context.Context) []types.Entry {
	def, ok := metric.ByID(s.store.SelectedMetric(ctx))
	if !ok {
		def, _ = metric.ByID(metric.DefaultID)
	}

	subs := s.store.Ranked(ctx)
	entries := make([]types.Entry, len(subs))
	for i, sub := range subs {
		entries[i] = types.Entry{
			Rank:       sub.Rank,
			TeamName:   sub.TeamName,
			Score:      def.Format(sub.Scores[def.ID]),
			SubmitTime: sub.SubmitTimeString(),
		}
	}
	return entries
}

// SelectedMetric returns the id of the metric driving ranking.
func (s *Service) SelectedMetric(ctx context.Context) string {
	return s.store.SelectedMetric(ctx)
}

// TruthLen returns the ground truth length, 0 when unset.
func (s *Service) TruthLen(ctx context.Context) int {
	return len(s.store.Truth(ctx))
}

// Login validates admin credentials and opens a persisted session.
func (s *Service) Login(ctx context.Context, user, pass string) error {
	return s.gate.Login(ctx, user, pass)
}

// Logout closes any admin session.
func (s *Service) Logout(ctx context.Context) error {
	return s.gate.Logout(ctx)
}

// IsAdmin reports whether an admin session is active.
func (s *Service) IsAdmin(ctx context.Context) (bool, error) {
	return s.gate.IsAdmin(ctx)
}

// LastError returns the current user-visible error message. Empty after a
// successful operation.
func (s *Service) LastError() string {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.lastErr
}

// Stats returns engine statistics for monitoring.
func (s *Service) Stats(ctx context.Context) map[string]interface{} {
	return map[string]interface{}{
		"started":        s.started,
		"teams":          s.store.Count(ctx),
		"truthSize":      len(s.store.Truth(ctx)),
		"selectedMetric": s.store.SelectedMetric(ctx),
	}
}

// hasTeam reports whether a team already holds a slot on the board.
func (s *Service) hasTeam(ctx context.Context, name string) bool {
	for _, sub := range s.store.Ranked(ctx) {
		if sub.TeamName == name {
			return true
		}
	}
	return false
}

// fail records err as the single current-error message and logs it.
func (s *Service) fail(ctx context.Context, msg string, err error, fields ...logger.Field) {
	s.errMu.Lock()
	s.lastErr = err.Error()
	s.errMu.Unlock()
	s.logger.Warn(ctx, msg, append(fields, logger.Error(err))...)
}

func (s *Service) clearError() {
	s.errMu.Lock()
	s.lastErr = ""
	s.errMu.Unlock()
}

// rejectionReason maps a scoring error to its metric label.
func rejectionReason(err error) string {
	var lengthErr *scoring.LengthMismatchError
	switch {
	case errors.Is(err, scoring.ErrNoGroundTruth):
		return reasonNoGroundTruth
	case errors.Is(err, scoring.ErrInvalidNumericData):
		return reasonInvalidNumeric
	case errors.As(err, &lengthErr):
		return reasonLengthMismatch
	default:
		return "other"
	}
}
