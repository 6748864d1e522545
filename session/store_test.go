package session

import (
	"fmt"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMemory(t *testing.T) {
	Convey("Given an empty memory store", t, func() {
		store := NewMemory[int]()

		Convey("Get should report absence", func() {
			So(store.Get("u").IsAbsent(), ShouldBeTrue)
			So(store.Len(), ShouldEqual, 0)
		})

		Convey("Put should replace a previous session", func() {
			store.Put("u", 1)
			store.Put("u", 2)
			So(store.Get("u").MustGet(), ShouldEqual, 2)
			So(store.Len(), ShouldEqual, 1)
		})

		Convey("Delete should remove exactly once", func() {
			store.Put("u", 1)
			So(store.Delete("u"), ShouldBeTrue)
			So(store.Delete("u"), ShouldBeFalse)
			So(store.Get("u").IsAbsent(), ShouldBeTrue)
		})

		Convey("Stores of different kinds should not collide", func() {
			other := NewMemory[string]()
			store.Put("u", 1)
			So(other.Get("u").IsAbsent(), ShouldBeTrue)
		})

		Convey("Concurrent writers should not lose entries", func() {
			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					store.Put(fmt.Sprint(i), i)
				}(i)
			}
			wg.Wait()
			So(store.Len(), ShouldEqual, 50)
		})
	})
}
