// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"math"
	"time"
)

// SubmitTimeLayout is the display/persistence layout for submission times.
const SubmitTimeLayout = "2006-01-02 15:04:05"

// GroundTruth is the ordered reference values submissions are scored
// against. It is replaced wholesale by an admin action; replacement
// invalidates every stored submission.
type GroundTruth []float64

// Set reports whether ground truth has been configured.
func (g GroundTruth) Set() bool { return g != nil }

func (g GroundTruth) MarshalJSON() ([]byte, error) { return Floats(g).MarshalJSON() }

func (g *GroundTruth) UnmarshalJSON(data []byte) error {
	var f Floats
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*g = GroundTruth(f)
	return nil
}

// Floats is a float64 slice that survives JSON round-trips when values are
// non-finite. JSON has no encoding for Inf or NaN, so they are stored as
// null and reload as NaN.
type Floats []float64

func (f Floats) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}
	out := make([]*float64, len(f))
	for i, v := range f {
		if finite(v) {
			out[i] = &v
		}
	}
	return json.Marshal(out)
}

func (f *Floats) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*f = nil
		return nil
	}
	out := make(Floats, len(raw))
	for i, v := range raw {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *v
	}
	*f = out
	return nil
}

// Scores maps metric id to the value computed at ingestion. A zero target
// makes MSPE non-finite, and JSON cannot encode Inf or NaN, so such values
// are stored as null and reload as NaN.
type Scores map[string]float64

func (s Scores) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	out := make(map[string]*float64, len(s))
	for id, v := range s {
		if finite(v) {
			out[id] = &v
			continue
		}
		out[id] = nil
	}
	return json.Marshal(out)
}

func (s *Scores) UnmarshalJSON(data []byte) error {
	var raw map[string]*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = nil
		return nil
	}
	out := make(Scores, len(raw))
	for id, v := range raw {
		if v == nil {
			out[id] = math.NaN()
			continue
		}
		out[id] = *v
	}
	*s = out
	return nil
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

// Submission is one team's latest scored attempt. TeamName is the unique
// key: at most one Submission per team exists at any time.
type Submission struct {
	// ID is a unique ingestion id assigned per upload.
	ID string `json:"id"`
	// TeamName is derived from the uploaded filename.
	TeamName    string `json:"team_name"`
	Predictions Floats `json:"predictions"`
	// Scores holds every metric's value, computed once at ingestion and
	// never recomputed on metric-selection changes.
	Scores          Scores    `json:"scores"`
	PredictionCount int       `json:"prediction_count"`
	SubmitTime      time.Time `json:"submit_time"`
	// Rank is derived, not authoritative: recomputed from the live
	// comparator on every mutation and cached only for display.
	Rank int `json:"rank"`
}

// SubmitTimeString renders the ingestion time for display.
func (s Submission) SubmitTimeString() string {
	return s.SubmitTime.Format(SubmitTimeLayout)
}
