package team_test

import (
	"testing"

	"github.com/okian/podium/internal/domain/team"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFromFilename(t *testing.T) {
	Convey("Given uploaded filenames", t, func() {
		Convey("Then the part before the first period is the team name", func() {
			So(team.FromFilename("TeamA.csv"), ShouldEqual, "TeamA")
			So(team.FromFilename("team.v2.csv"), ShouldEqual, "team")
		})

		Convey("Then a filename without an extension is used whole", func() {
			So(team.FromFilename("TeamA"), ShouldEqual, "TeamA")
		})

		Convey("Then no normalization is applied", func() {
			So(team.FromFilename("teama.csv"), ShouldNotEqual, team.FromFilename("TeamA.csv"))
			So(team.FromFilename(" TeamA .csv"), ShouldEqual, " TeamA ")
		})
	})
}
