package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given a MyAnimeList page", t, func() {
		const u = "https://myanimelist.net/anime/1?a=1&b=2"

		Convey("Linux should use xdg-open by default", func() {
			cmd, ok := command("linux", u, "")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", u})
		})

		Convey("A configured browser should be launched directly", func() {
			cmd, ok := command("linux", u, "firefox")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"firefox", u})
		})

		Convey("Windows should escape ampersands for start", func() {
			cmd, ok := command("windows", u, "chrome")
			So(ok, ShouldBeTrue)
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "https://myanimelist.net/anime/1?a=1^&b=2")
		})

		Convey("Unknown systems should be rejected", func() {
			_, ok := command("plan9", u, "")
			So(ok, ShouldBeFalse)
		})
	})
}
