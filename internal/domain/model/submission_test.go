package model_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/okian/podium/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGroundTruth(t *testing.T) {
	Convey("Given ground truth states", t, func() {
		Convey("Then nil means unset and empty means set", func() {
			So(model.GroundTruth(nil).Set(), ShouldBeFalse)
			So(model.GroundTruth{}.Set(), ShouldBeTrue)
			So(model.GroundTruth{1.0}.Set(), ShouldBeTrue)
		})
	})
}

func TestNonFiniteJSON(t *testing.T) {
	Convey("Given scores holding non-finite values", t, func() {
		scores := model.Scores{"mspe": math.Inf(1), "rmse": 0.5, "mae": math.NaN()}

		Convey("When marshalled", func() {
			data, err := json.Marshal(scores)
			So(err, ShouldBeNil)

			Convey("Then non-finite values are encoded as null", func() {
				So(string(data), ShouldContainSubstring, `"mspe":null`)
				So(string(data), ShouldContainSubstring, `"mae":null`)
				So(string(data), ShouldContainSubstring, `"rmse":0.5`)
			})

			Convey("Then they reload as NaN with finite values intact", func() {
				var got model.Scores
				So(json.Unmarshal(data, &got), ShouldBeNil)
				So(math.IsNaN(got["mspe"]), ShouldBeTrue)
				So(math.IsNaN(got["mae"]), ShouldBeTrue)
				So(got["rmse"], ShouldEqual, 0.5)
			})
		})
	})

	Convey("Given predictions holding non-finite values", t, func() {
		preds := model.Floats{1.0, math.Inf(-1), math.NaN()}

		Convey("When round-tripped through JSON", func() {
			data, err := json.Marshal(preds)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "[1,null,null]")

			var got model.Floats
			So(json.Unmarshal(data, &got), ShouldBeNil)

			Convey("Then the shape survives with nulls as NaN", func() {
				So(got, ShouldHaveLength, 3)
				So(got[0], ShouldEqual, 1.0)
				So(math.IsNaN(got[1]), ShouldBeTrue)
				So(math.IsNaN(got[2]), ShouldBeTrue)
			})
		})
	})

	Convey("Given ground truth containing a zero and an Inf", t, func() {
		truth := model.GroundTruth{0.0, math.Inf(1)}

		Convey("When round-tripped through JSON", func() {
			data, err := json.Marshal(truth)
			So(err, ShouldBeNil)

			var got model.GroundTruth
			So(json.Unmarshal(data, &got), ShouldBeNil)

			Convey("Then it stays set with the zero intact", func() {
				So(got.Set(), ShouldBeTrue)
				So(got, ShouldHaveLength, 2)
				So(got[0], ShouldEqual, 0.0)
				So(math.IsNaN(got[1]), ShouldBeTrue)
			})
		})
	})
}

func TestSubmitTimeString(t *testing.T) {
	Convey("Given a submission timestamp", t, func() {
		sub := model.Submission{SubmitTime: time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC)}

		Convey("Then it renders in the display layout", func() {
			So(sub.SubmitTimeString(), ShouldEqual, "2026-03-01 09:05:00")
		})
	})
}
