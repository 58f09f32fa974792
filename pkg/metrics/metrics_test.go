package metrics_test

import (
	"testing"

	"github.com/okian/podium/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerDump(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When engine activity is recorded", func() {
			metrics.RecordSubmissionScored()
			metrics.RecordSubmissionRejected("length_mismatch")
			metrics.RecordTeamReplacement()
			metrics.RecordTruthReset()
			metrics.RecordMetricSwitch()
			metrics.RecordScoringLatency(0.002)
			metrics.UpdateTeamCount(4)
			metrics.UpdateTruthSize(100)

			Convey("Then the dump carries every metric family", func() {
				dump, err := metrics.Dump()
				So(err, ShouldBeNil)
				So(dump, ShouldContainSubstring, "podium_board_submissions_scored_total")
				So(dump, ShouldContainSubstring, "podium_board_submissions_rejected_total")
				So(dump, ShouldContainSubstring, `reason="length_mismatch"`)
				So(dump, ShouldContainSubstring, "podium_board_team_replacements_total")
				So(dump, ShouldContainSubstring, "podium_board_ground_truth_resets_total")
				So(dump, ShouldContainSubstring, "podium_board_metric_switches_total")
				So(dump, ShouldContainSubstring, "podium_board_scoring_latency_seconds")
				So(dump, ShouldContainSubstring, "podium_board_team_count 4")
				So(dump, ShouldContainSubstring, "podium_board_ground_truth_size 100")
			})
		})
	})
}

func TestManagerOptions(t *testing.T) {
	Convey("Given a manager with a custom namespace", t, func() {
		m := metrics.NewManager(
			metrics.WithNamespace("contest"),
			metrics.WithSubsystem("scores"),
		)

		Convey("When dumping", func() {
			dump, err := m.Dump()

			Convey("Then metric names use the custom prefix", func() {
				So(err, ShouldBeNil)
				So(dump, ShouldContainSubstring, "contest_scores_team_count")
			})
		})
	})
}
