package auth

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		Reset(func() {
			viper.Set(MALClientID.ConfigKey, "")
			_ = Delete(MALClientID)
		})

		Convey("Should prefer the configured value", func() {
			viper.Set(MALClientID.ConfigKey, "from-config")
			So(Set(MALClientID, "from-keyring"), ShouldBeNil)

			v, err := Resolve(MALClientID)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "from-config")
		})

		Convey("Should fall back to the keyring", func() {
			So(Set(MALClientID, "from-keyring"), ShouldBeNil)

			v, err := Resolve(MALClientID)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "from-keyring")
		})

		Convey("Should report a missing credential", func() {
			_, err := Resolve(MALClientID)
			So(errors.Is(err, ErrMissing), ShouldBeTrue)
		})

		Convey("Delete should tolerate an absent secret", func() {
			So(Delete(DiscordToken), ShouldBeNil)
		})
	})
}
