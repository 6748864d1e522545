package pager

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPager(t *testing.T) {
	Convey("Given a pager over 23 items", t, func() {
		p := New("owner", lo.Range(23))

		Convey("It should have 3 pages", func() {
			So(p.Total(), ShouldEqual, 3)
			So(p.Page().Items, ShouldHaveLength, 10)
		})

		Convey("prevFive on the first page should stay put", func() {
			So(p.Move("owner", PrevFive), ShouldBeFalse)
			So(p.Page().Index, ShouldEqual, 0)
		})

		Convey("nextFive should clamp to the last page", func() {
			So(p.Move("owner", NextFive), ShouldBeTrue)
			page := p.Page()
			So(page.Index, ShouldEqual, 2)
			So(page.Items, ShouldResemble, []int{20, 21, 22})
			So(page.Offset, ShouldEqual, 20)

			Convey("and further forward moves should stay on it", func() {
				So(p.Move("owner", NextFive), ShouldBeFalse)
				So(p.Move("owner", Next), ShouldBeFalse)
				So(p.Page().Index, ShouldEqual, 2)
			})

			Convey("and prev should step back one page", func() {
				So(p.Move("owner", Prev), ShouldBeTrue)
				So(p.Page().Index, ShouldEqual, 1)
			})
		})

		Convey("Moves by another user should be ignored", func() {
			So(p.Move("intruder", Next), ShouldBeFalse)
			So(p.Page().Index, ShouldEqual, 0)
		})

		Convey("Controls should be disabled at the bounds", func() {
			first := p.Page()
			So(first.Enabled(Prev), ShouldBeFalse)
			So(first.Enabled(PrevFive), ShouldBeFalse)
			So(first.Enabled(Next), ShouldBeTrue)

			p.Move("owner", NextFive)
			last := p.Page()
			So(last.Enabled(Next), ShouldBeFalse)
			So(last.Enabled(NextFive), ShouldBeFalse)
			So(last.Enabled(PrevFive), ShouldBeTrue)
		})
	})

	Convey("Given a single page", t, func() {
		p := New("owner", []string{"a"})

		Convey("No move should change it", func() {
			for _, a := range Actions {
				So(p.Move("owner", a), ShouldBeFalse)
			}
			So(p.Page().HasNext(), ShouldBeFalse)
			So(p.Page().HasPrev(), ShouldBeFalse)
		})
	})

	Convey("ParseAction", t, func() {
		a, ok := ParseAction("next5")
		So(ok, ShouldBeTrue)
		So(a, ShouldEqual, NextFive)

		_, ok = ParseAction("jump")
		So(ok, ShouldBeFalse)
	})
}
