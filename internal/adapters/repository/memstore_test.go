package repository_test

import (
	"context"
	"fmt"
	"testing"

	repository "github.com/podium-rank/podium/internal/adapters/repository"
	"github.com/podium-rank/podium/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func table(rows int) []model.Table {
	t := model.Table{Labels: []string{"Aff", "Neg"}}
	for i := 0; i < rows; i++ {
		t.Rows = append(t.Rows, model.RawRow{"Aff": fmt.Sprintf("A%d", i), "Neg": "B"})
	}
	return []model.Table{t}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given a new memory store", t, func() {
		s := repository.NewMemoryStore()

		Convey("When adding tournaments", func() {
			r1, err1 := s.Add(ctx, "first", 1.0, table(2), "digest-1")
			r2, err2 := s.Add(ctx, "second", 2.0, table(3), "digest-2")

			Convey("Then records come back in arrival order", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(r1.Rows, ShouldEqual, 2)
				So(r2.LevelWeight, ShouldEqual, 2.0)

				records := s.List(ctx)
				So(records, ShouldHaveLength, 2)
				So(records[0].Name, ShouldEqual, "first")
				So(records[1].Name, ShouldEqual, "second")
				So(records[0].ID, ShouldNotBeEmpty)
				So(s.Count(ctx), ShouldEqual, 2)
			})
		})

		Convey("When re-uploading identical content", func() {
			_, err1 := s.Add(ctx, "states", 1.0, table(1), "same-digest")
			_, err2 := s.Add(ctx, "states again", 1.0, table(1), "same-digest")

			Convey("Then the second upload is rejected", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldEqual, repository.ErrDuplicateUpload)
				So(s.Count(ctx), ShouldEqual, 1)
			})
		})

		Convey("When adding an empty upload", func() {
			_, err := s.Add(ctx, "empty", 1.0, nil, "d")

			Convey("Then it is rejected", func() {
				So(err, ShouldEqual, repository.ErrEmptyUpload)
			})
		})

		Convey("When the level weight is unset", func() {
			r, err := s.Add(ctx, "t", 0, table(1), "d")

			Convey("Then it defaults to 1.0", func() {
				So(err, ShouldBeNil)
				So(r.LevelWeight, ShouldEqual, 1.0)
			})
		})
	})

	Convey("Given a bounded store", t, func() {
		s := repository.NewMemoryStore(repository.WithMaxTournaments(2))
		_, _ = s.Add(ctx, "one", 1, table(1), "d1")
		_, _ = s.Add(ctx, "two", 1, table(1), "d2")
		_, _ = s.Add(ctx, "three", 1, table(1), "d3")

		Convey("Then the oldest tournament is evicted first", func() {
			records := s.List(ctx)
			So(records, ShouldHaveLength, 2)
			So(records[0].Name, ShouldEqual, "two")
			So(records[1].Name, ShouldEqual, "three")
		})
	})

	Convey("Given a snapshot", t, func() {
		s := repository.NewMemoryStore()
		_, _ = s.Add(ctx, "one", 1, table(1), "d1")
		snap := s.Snapshot(ctx)
		_, _ = s.Add(ctx, "two", 1, table(1), "d2")

		Convey("Then later mutations do not affect it", func() {
			So(snap, ShouldHaveLength, 1)
			So(s.Count(ctx), ShouldEqual, 2)
			So(snap[0].Name, ShouldEqual, "one")
		})
	})
}
