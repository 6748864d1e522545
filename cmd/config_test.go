package cmd

import (
	"testing"

	"github.com/anisan-cli/anibot/config"
	"github.com/anisan-cli/anibot/errs"
	"github.com/anisan-cli/anibot/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestValidateConfigValue(t *testing.T) {
	Convey("Given values for the game defaults", t, func() {
		Convey("Known names should be accepted", func() {
			So(validateConfigValue(key.GameDefaultDifficulty, "hard"), ShouldBeNil)
			So(validateConfigValue(key.GameDefaultRanking, "airing"), ShouldBeNil)
			So(validateConfigValue(key.IconsVariant, "nerd"), ShouldBeNil)
			So(validateConfigValue(key.GameDefaultPoolSize, 2500), ShouldBeNil)
		})

		Convey("An unknown difficulty should list the options", func() {
			err := validateConfigValue(key.GameDefaultDifficulty, "insane")
			So(err.Error(), ShouldEqual, `Invalid difficulty "insane". Valid options: easy, medium, hard.`)
		})

		Convey("An unknown ranking should be rejected", func() {
			err := validateConfigValue(key.GameDefaultRanking, "weekly")
			_, ok := errs.AsValidation(err)
			So(ok, ShouldBeTrue)
		})

		Convey("An unknown icon variant should list the options", func() {
			err := validateConfigValue(key.IconsVariant, "ascii")
			So(err.Error(), ShouldEqual, `Invalid icons variant "ascii". Valid options: emoji, nerd, plain, kaomoji, squares.`)
		})

		Convey("Pool sizes outside the game limits should be rejected", func() {
			So(validateConfigValue(key.GameDefaultPoolSize, 0).Error(), ShouldEqual,
				`Invalid pool size "0". Pool size must be a number between 1-2500.`)
			So(validateConfigValue(key.GameDefaultPoolSize, 2501), ShouldNotBeNil)
		})

		Convey("Timeouts should be positive", func() {
			So(validateConfigValue(key.MALTimeout, 0), ShouldNotBeNil)
			So(validateConfigValue(key.BotControlTimeout, 60), ShouldBeNil)
			So(validateConfigValue(key.LogsKeepDays, 0), ShouldBeNil)
			So(validateConfigValue(key.LogsKeepDays, -1), ShouldNotBeNil)
		})
	})

	Convey("Every default should pass its own validation", t, func() {
		for k, field := range config.Default {
			So(validateConfigValue(k, field.Value), ShouldBeNil)
		}
	})
}
