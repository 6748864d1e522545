package errs

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestValidation(t *testing.T) {
	Convey("Validation", t, func() {
		Convey("Invalid should name the value and options", func() {
			err := Invalid("season", "autumn", "winter", "spring")
			So(err.Error(), ShouldEqual, `Invalid season "autumn". Valid options: winter, spring.`)
		})

		Convey("Newf should keep the custom message", func() {
			err := Newf("Rating must be between %d and %d.", 0, 10)
			So(err.Error(), ShouldEqual, "Rating must be between 0 and 10.")
		})

		Convey("AsValidation should see through wrapping", func() {
			wrapped := fmt.Errorf("guessgame: %w", Invalid("difficulty", "insane"))
			v, ok := AsValidation(wrapped)
			So(ok, ShouldBeTrue)
			So(v.Field, ShouldEqual, "difficulty")

			_, ok = AsValidation(fmt.Errorf("plain"))
			So(ok, ShouldBeFalse)
		})
	})
}
