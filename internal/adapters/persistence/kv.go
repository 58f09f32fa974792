// Package persistence bridges engine state to a durable key-value store.
//
// The store contract is deliberately tiny (load/save/clear on string
// values) so the engine can sit on anything from a directory of files to
// a browser-style local storage.
package persistence

import "context"

// Storage keys. Each entry is independent: any of them may be absent.
const (
	KeyGroundTruth    = "ground_truth"
	KeySubmissions    = "submissions"
	KeySelectedMetric = "selected_metric"
	KeySession        = "session"
)

// KV is the durable key-value store the bridge writes through.
type KV interface {
	// Load returns the stored value for key. The second return is false
	// when the key is absent.
	Load(ctx context.Context, key string) (string, bool, error)

	// Save stores value under key, replacing any previous value.
	Save(ctx context.Context, key, value string) error

	// Clear removes key. Clearing an absent key is not an error.
	Clear(ctx context.Context, key string) error
}
