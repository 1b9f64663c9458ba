package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackendSwitching(t *testing.T) {
	Convey("Filesystem backend", t, func() {
		Convey("Memory backend keeps writes out of the real filesystem", func() {
			SetMemMapFs()
			defer SetOsFs()

			err := API().WriteFile("/virtual/probe", []byte("ok"), 0644)
			So(err, ShouldBeNil)

			content, err := API().ReadFile("/virtual/probe")
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, "ok")
		})
	})
}
