package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/podium/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaults(t *testing.T) {
	Convey("Given default configuration", t, func() {
		cfg := config.New()

		Convey("Then sensible defaults are set", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.DataDir, ShouldEqual, ".podium")
			So(cfg.DefaultMetric, ShouldEqual, "rmse")
			So(cfg.AdminUser, ShouldEqual, "admin")
			So(cfg.AdminPass, ShouldNotBeEmpty)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given environment overrides", t, func() {
		t.Setenv("PODIUM_DATA_DIR", "/tmp/podium-test")
		t.Setenv("PODIUM_DEFAULT_METRIC", "mae")
		t.Setenv("PODIUM_LOG_LEVEL", "debug")

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then env wins over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.DataDir, ShouldEqual, "/tmp/podium-test")
				So(cfg.DefaultMetric, ShouldEqual, "mae")
				So(cfg.LogLevel, ShouldEqual, "debug")
			})
		})
	})

	Convey("Given an unknown default metric", t, func() {
		t.Setenv("PODIUM_DEFAULT_METRIC", "elo")

		Convey("When loading", func() {
			_, err := config.Load(context.Background())

			Convey("Then loading fails with ErrInvalidConfig", func() {
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
