package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/anisan-cli/anibot/filesystem"
	"github.com/anisan-cli/anibot/key"
	"github.com/anisan-cli/anibot/where"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Log Setup", t, func() {
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			viper.Set(key.LogsLevel, "info")
		})

		Convey("Should fall back to info on an unknown level", func() {
			viper.Set(key.LogsLevel, "chatty")
			So(Setup(), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})

		Convey("Should honor a configured level", func() {
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
		})

		Convey("Should create a dated file when writing is enabled", func() {
			viper.Set(key.LogsWrite, true)
			So(Setup(), ShouldBeNil)

			entries, err := filesystem.API().ReadDir(where.Logs())
			So(err, ShouldBeNil)
			So(entries, ShouldNotBeEmpty)
		})
	})
}

func TestCollectGarbage(t *testing.T) {
	Convey("Given an old and a fresh log file", t, func() {
		fs := filesystem.API()
		now := time.Now()

		old := filepath.Join(where.Logs(), "2000-01-01.log")
		fresh := filepath.Join(where.Logs(), "fresh.log")
		notes := filepath.Join(where.Logs(), "notes.txt")
		for _, path := range []string{old, fresh, notes} {
			So(fs.WriteFile(path, []byte("x"), 0644), ShouldBeNil)
		}
		So(fs.Chtimes(old, now.AddDate(0, 0, -30), now.AddDate(0, 0, -30)), ShouldBeNil)
		So(fs.Chtimes(notes, now.AddDate(0, 0, -30), now.AddDate(0, 0, -30)), ShouldBeNil)

		Reset(func() {
			viper.Set(key.LogsKeepDays, 14)
			for _, path := range []string{old, fresh, notes} {
				_ = fs.Remove(path)
			}
		})

		Convey("Only expired log files should be removed", func() {
			viper.Set(key.LogsKeepDays, 14)
			So(CollectGarbage(now), ShouldEqual, 1)

			exists := func(path string) bool { return lo.Must(fs.Exists(path)) }
			So(exists(old), ShouldBeFalse)
			So(exists(fresh), ShouldBeTrue)
			So(exists(notes), ShouldBeTrue)
		})

		Convey("Disabled retention should keep everything", func() {
			viper.Set(key.LogsKeepDays, 0)
			So(CollectGarbage(now), ShouldEqual, 0)
			So(lo.Must(fs.Exists(old)), ShouldBeTrue)
		})
	})
}
