package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/podium/internal/adapters/persistence"
	"github.com/okian/podium/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFileKV(t *testing.T) {
	Convey("Given a file-backed store in a temp dir", t, func() {
		kv, err := persistence.NewFileKV(t.TempDir())
		So(err, ShouldBeNil)
		ctx := context.Background()

		Convey("When loading an absent key", func() {
			_, found, err := kv.Load(ctx, "missing")

			Convey("Then it reports not found without error", func() {
				So(err, ShouldBeNil)
				So(found, ShouldBeFalse)
			})
		})

		Convey("When saving and reloading a value", func() {
			So(kv.Save(ctx, "k", "v1"), ShouldBeNil)
			So(kv.Save(ctx, "k", "v2"), ShouldBeNil)
			v, found, err := kv.Load(ctx, "k")

			Convey("Then the latest value wins", func() {
				So(err, ShouldBeNil)
				So(found, ShouldBeTrue)
				So(v, ShouldEqual, "v2")
			})
		})

		Convey("When clearing a key", func() {
			So(kv.Save(ctx, "k", "v"), ShouldBeNil)
			So(kv.Clear(ctx, "k"), ShouldBeNil)
			_, found, err := kv.Load(ctx, "k")

			Convey("Then the key is gone and clearing again is fine", func() {
				So(err, ShouldBeNil)
				So(found, ShouldBeFalse)
				So(kv.Clear(ctx, "k"), ShouldBeNil)
			})
		})
	})
}

func TestBridge(t *testing.T) {
	Convey("Given a bridge over an in-memory store", t, func() {
		kv := persistence.NewMemKV()
		bridge := persistence.NewBridge(kv)
		ctx := context.Background()

		Convey("When no state has been stored", func() {
			Convey("Then every entry loads as absent", func() {
				_, found, err := bridge.LoadTruth(ctx)
				So(err, ShouldBeNil)
				So(found, ShouldBeFalse)

				_, found, err = bridge.LoadSubmissions(ctx)
				So(err, ShouldBeNil)
				So(found, ShouldBeFalse)

				_, found, err = bridge.LoadSelectedMetric(ctx)
				So(err, ShouldBeNil)
				So(found, ShouldBeFalse)
			})
		})

		Convey("When ground truth is saved", func() {
			So(bridge.SaveTruth(ctx, model.GroundTruth{1, 2, 3}), ShouldBeNil)
			truth, found, err := bridge.LoadTruth(ctx)

			Convey("Then it round-trips", func() {
				So(err, ShouldBeNil)
				So(found, ShouldBeTrue)
				So(truth, ShouldResemble, model.GroundTruth{1, 2, 3})
			})
		})

		Convey("When submissions are saved", func() {
			subs := []model.Submission{{
				ID:              "sub-1",
				TeamName:        "TeamA",
				Predictions:     []float64{1, 2},
				Scores:          map[string]float64{"rmse": 0.5},
				PredictionCount: 2,
				SubmitTime:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
				Rank:            1,
			}}
			So(bridge.SaveSubmissions(ctx, subs), ShouldBeNil)
			got, found, err := bridge.LoadSubmissions(ctx)

			Convey("Then scores, times, and ranks survive", func() {
				So(err, ShouldBeNil)
				So(found, ShouldBeTrue)
				So(got, ShouldResemble, subs)
			})
		})

		Convey("When the selected metric is saved", func() {
			So(bridge.SaveSelectedMetric(ctx, "mae"), ShouldBeNil)
			id, found, err := bridge.LoadSelectedMetric(ctx)

			Convey("Then it round-trips", func() {
				So(err, ShouldBeNil)
				So(found, ShouldBeTrue)
				So(id, ShouldEqual, "mae")
			})
		})

		Convey("When a stored value is corrupted", func() {
			So(kv.Save(ctx, persistence.KeyGroundTruth, "{not json"), ShouldBeNil)
			_, _, err := bridge.LoadTruth(ctx)

			Convey("Then loading fails with ErrCorruptState", func() {
				So(errors.Is(err, persistence.ErrCorruptState), ShouldBeTrue)
			})
		})

		Convey("When a session token is saved and cleared", func() {
			So(bridge.SaveSession(ctx, "token-1"), ShouldBeNil)
			token, found, err := bridge.LoadSession(ctx)
			So(err, ShouldBeNil)
			So(found, ShouldBeTrue)
			So(token, ShouldEqual, "token-1")

			So(bridge.ClearSession(ctx), ShouldBeNil)
			_, found, err = bridge.LoadSession(ctx)

			Convey("Then the session is gone", func() {
				So(err, ShouldBeNil)
				So(found, ShouldBeFalse)
			})
		})
	})
}
