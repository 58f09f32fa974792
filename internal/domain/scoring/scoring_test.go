package scoring_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/podium/internal/domain/metric"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEngine_Score(t *testing.T) {
	Convey("Given a scoring engine with a fixed clock and id", t, func() {
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		engine := scoring.NewEngine(
			scoring.WithNow(func() time.Time { return now }),
			scoring.WithIDGenerator(func() string { return "sub-1" }),
		)
		truth := model.GroundTruth{1.0, 2.0, 3.0}
		ctx := context.Background()

		Convey("When scoring a perfect submission", func() {
			raw := "id,value\n1,1.0\n2,2.0\n3,3.0\n"
			sub, err := engine.Score(ctx, raw, "TeamA.csv", truth)

			Convey("Then every metric is computed at ingestion", func() {
				So(err, ShouldBeNil)
				So(sub.Scores, ShouldHaveLength, 4)
				So(sub.Scores[metric.Accuracy], ShouldEqual, 1.0)
				So(sub.Scores[metric.MAE], ShouldEqual, 0.0)
				So(sub.Scores[metric.RMSE], ShouldEqual, 0.0)
				So(sub.Scores[metric.MSPE], ShouldEqual, 0.0)
			})

			Convey("Then identity and bookkeeping fields are filled", func() {
				So(sub.ID, ShouldEqual, "sub-1")
				So(sub.TeamName, ShouldEqual, "TeamA")
				So(sub.PredictionCount, ShouldEqual, 3)
				So(sub.SubmitTime, ShouldEqual, now)
				So(sub.Rank, ShouldEqual, 0) // rank is the store's job
			})
		})

		Convey("When ground truth is unset", func() {
			_, err := engine.Score(ctx, "id,value\n1,1.0\n", "TeamA.csv", nil)

			Convey("Then it fails with ErrNoGroundTruth", func() {
				So(errors.Is(err, scoring.ErrNoGroundTruth), ShouldBeTrue)
			})
		})

		Convey("When the file contains a non-numeric value", func() {
			_, err := engine.Score(ctx, "id,value\n1,oops\n2,2.0\n3,3.0\n", "TeamA.csv", truth)

			Convey("Then it fails with ErrInvalidNumericData", func() {
				So(errors.Is(err, scoring.ErrInvalidNumericData), ShouldBeTrue)
			})
		})

		Convey("When the prediction count differs from the truth", func() {
			_, err := engine.Score(ctx, "id,value\n1,1.0\n2,2.0\n", "TeamA.csv", truth)

			Convey("Then the error carries both counts", func() {
				var mismatch *scoring.LengthMismatchError
				So(errors.As(err, &mismatch), ShouldBeTrue)
				So(mismatch.Got, ShouldEqual, 2)
				So(mismatch.Want, ShouldEqual, 3)
				So(err.Error(), ShouldContainSubstring, "2")
				So(err.Error(), ShouldContainSubstring, "3")
			})
		})

		Convey("When the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := engine.Score(cancelled, "id,value\n1,1.0\n", "TeamA.csv", truth)

			Convey("Then it fails fast", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
