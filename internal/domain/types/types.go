// Package types contains common types used across the application
package types

// Entry represents a leaderboard row as shown to the presentation layer.
// Score is pre-formatted under the currently selected metric.
type Entry struct {
	Rank       int    `json:"rank"`
	TeamName   string `json:"team_name"`
	Score      string `json:"score"`
	SubmitTime string `json:"submit_time"`
}
