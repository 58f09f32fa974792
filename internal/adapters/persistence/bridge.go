package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/okian/podium/internal/domain/model"
)

// Bridge serializes engine state to and from a KV store. Every mutating
// operation on the board writes through the bridge in the same logical
// step; there is no deferred or batched write.
type Bridge struct {
	kv KV
}

// NewBridge creates a bridge over kv.
func NewBridge(kv KV) *Bridge {
	return &Bridge{kv: kv}
}

// SaveTruth persists the ground truth.
func (b *Bridge) SaveTruth(ctx context.Context, truth model.GroundTruth) error {
	return b.saveJSON(ctx, KeyGroundTruth, truth)
}

// LoadTruth restores the ground truth. found is false when none is stored.
func (b *Bridge) LoadTruth(ctx context.Context) (model.GroundTruth, bool, error) {
	var truth model.GroundTruth
	found, err := b.loadJSON(ctx, KeyGroundTruth, &truth)
	if err != nil || !found {
		return nil, found, err
	}
	return truth, true, nil
}

// SaveSubmissions persists the full submission set in rank order.
func (b *Bridge) SaveSubmissions(ctx context.Context, subs []model.Submission) error {
	if subs == nil {
		subs = []model.Submission{}
	}
	return b.saveJSON(ctx, KeySubmissions, subs)
}

// LoadSubmissions restores the submission set.
func (b *Bridge) LoadSubmissions(ctx context.Context) ([]model.Submission, bool, error) {
	var subs []model.Submission
	found, err := b.loadJSON(ctx, KeySubmissions, &subs)
	if err != nil || !found {
		return nil, found, err
	}
	return subs, true, nil
}

// SaveSelectedMetric persists the id of the metric driving ranking.
func (b *Bridge) SaveSelectedMetric(ctx context.Context, id string) error {
	return b.saveJSON(ctx, KeySelectedMetric, id)
}

// LoadSelectedMetric restores the selected metric id.
func (b *Bridge) LoadSelectedMetric(ctx context.Context) (string, bool, error) {
	var id string
	found, err := b.loadJSON(ctx, KeySelectedMetric, &id)
	if err != nil || !found {
		return "", found, err
	}
	return id, true, nil
}

// SaveSession persists an admin session token.
func (b *Bridge) SaveSession(ctx context.Context, token string) error {
	return b.saveJSON(ctx, KeySession, token)
}

// LoadSession restores the admin session token, if any.
func (b *Bridge) LoadSession(ctx context.Context) (string, bool, error) {
	var token string
	found, err := b.loadJSON(ctx, KeySession, &token)
	if err != nil || !found {
		return "", found, err
	}
	return token, true, nil
}

// ClearSession removes the admin session token.
func (b *Bridge) ClearSession(ctx context.Context) error {
	return b.kv.Clear(ctx, KeySession)
}

func (b *Bridge) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return b.kv.Save(ctx, key, string(data))
}

// loadJSON reads and decodes key into v. A stored value that fails to
// decode is reported as ErrCorruptState, never skipped.
func (b *Bridge) loadJSON(ctx context.Context, key string, v any) (bool, error) {
	raw, found, err := b.kv.Load(ctx, key)
	if err != nil || !found {
		return found, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return true, fmt.Errorf("%w: %s: %w", ErrCorruptState, key, err)
	}
	return true, nil
}
