// Package metric defines the scoring metrics available to the leaderboard.
package metric

import (
	"fmt"
	"math"
)

// Tolerance below which a prediction counts as correct for accuracy.
const accuracyTolerance = 0.01

// Metric identifiers. These are also the keys used in persisted score maps,
// so changing them invalidates stored submissions.
const (
	Accuracy = "accuracy"
	MAE      = "mae"
	RMSE     = "rmse"
	MSPE     = "mspe"
)

// DefaultID is the metric used for ranking when no selection is stored.
const DefaultID = RMSE

// Definition describes one scoring metric: how to compute it from a
// prediction/target pair, which direction is better, and how to render it.
type Definition struct {
	// ID is the stable identifier used in score maps and persistence.
	ID string
	// Name is the human-readable display name.
	Name string
	// Calculate computes the metric over equal-length sequences. It is pure
	// and assumes the caller validated the lengths.
	Calculate func(predictions, targets []float64) float64
	// HigherIsBetter controls the ranking comparator direction.
	HigherIsBetter bool
	// Format renders a computed value for display.
	Format func(v float64) string
}

// registry holds the fixed, ordered set of metrics. Order is the display
// order in selectors and tables.
var registry = []Definition{
	{
		ID:   Accuracy,
		Name: "Accuracy",
		Calculate: func(predictions, targets []float64) float64 {
			correct := 0
			for i, p := range predictions {
				if math.Abs(p-targets[i]) < accuracyTolerance {
					correct++
				}
			}
			return float64(correct) / float64(len(predictions))
		},
		HigherIsBetter: true,
		Format:         formatPercent,
	},
	{
		ID:   MAE,
		Name: "MAE",
		Calculate: func(predictions, targets []float64) float64 {
			var sum float64
			for i, p := range predictions {
				sum += math.Abs(p - targets[i])
			}
			return sum / float64(len(predictions))
		},
		HigherIsBetter: false,
		Format:         formatFixed,
	},
	{
		ID:   RMSE,
		Name: "RMSE",
		Calculate: func(predictions, targets []float64) float64 {
			var sum float64
			for i, p := range predictions {
				d := p - targets[i]
				sum += d * d
			}
			return math.Sqrt(sum / float64(len(predictions)))
		},
		HigherIsBetter: false,
		Format:         formatFixed,
	},
	{
		ID:   MSPE,
		Name: "MSPE",
		// A zero target yields an Inf or NaN contribution. The upstream
		// competition rules leave this unguarded, so we do too.
		Calculate: func(predictions, targets []float64) float64 {
			var sum float64
			for i, p := range predictions {
				r := (targets[i] - p) / targets[i]
				sum += r * r
			}
			return sum / float64(len(predictions))
		},
		HigherIsBetter: false,
		Format:         formatPercent,
	},
}

func formatPercent(v float64) string { return fmt.Sprintf("%.2f%%", v*100) }
func formatFixed(v float64) string   { return fmt.Sprintf("%.4f", v) }

// All returns the registered metrics in display order.
// The returned slice is a copy; callers may not mutate the registry.
func All() []Definition {
	out := make([]Definition, len(registry))
	copy(out, registry)
	return out
}

// ByID returns the definition for id.
// The second return is false if id is not registered.
func ByID(id string) (Definition, bool) {
	for _, d := range registry {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// IDs returns the registered metric identifiers in display order.
func IDs() []string {
	ids := make([]string, len(registry))
	for i, d := range registry {
		ids[i] = d.ID
	}
	return ids
}
