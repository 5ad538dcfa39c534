package service_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	service "github.com/podium-rank/podium/internal/app"
	"github.com/podium-rank/podium/internal/domain/model"
	"github.com/podium-rank/podium/internal/domain/rank"
	. "github.com/smartystreets/goconvey/convey"
)

func roundTable(rows ...[]string) []model.Table {
	t := model.Table{Labels: []string{"Aff", "Neg", "Win", "Aff Points", "Neg Points"}}
	for _, r := range rows {
		row := model.RawRow{}
		for i, label := range t.Labels {
			if i < len(r) {
				row[label] = r[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return []model.Table{t}
}

func TestService(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with two registered tournaments", t, func() {
		svc := service.New(service.WithRecentCount(2))

		_, err := svc.RegisterTournament(ctx, "districts", 1.0, roundTable(
			[]string{"Team X", "Team Y", "Aff", "Alice 28.5 Bob 27.0", "Carol 26 Dave 25"},
			[]string{"Team Y", "Team X", "Neg", "Carol 27 Dave 26", "Alice 28 Bob 27"},
		), "digest-a")
		So(err, ShouldBeNil)

		_, err = svc.RegisterTournament(ctx, "states", 2.0, roundTable(
			[]string{"Team X", "Team Z", "Aff", "Alice 29 Bob 28", "Erin 27 Frank 26"},
		), "digest-b")
		So(err, ShouldBeNil)

		Convey("When processing with defaults", func() {
			results, err := svc.Process(ctx, service.Settings{})

			Convey("Then per-tournament and global boards come back", func() {
				So(err, ShouldBeNil)
				So(results.PerTournament, ShouldHaveLength, 2)
				So(results.PerTournament[0].Name, ShouldEqual, "districts")
				So(results.Skips, ShouldBeEmpty)

				So(results.Global.Teams, ShouldNotBeEmpty)
				So(results.Global.Teams[0].Team, ShouldEqual, "Team X")

				So(results.Global.Speakers, ShouldNotBeEmpty)
				So(results.Global.Speakers[0].Name, ShouldEqual, "Alice")
			})

			Convey("Then reprocessing identical state is byte-identical", func() {
				again, err := svc.Process(ctx, service.Settings{})
				So(err, ShouldBeNil)
				So(cmp.Diff(results, again), ShouldBeEmpty)
			})
		})

		Convey("When processing in per-tournament mode", func() {
			results, err := svc.Process(ctx, service.Settings{Mode: rank.ModePerTournament})

			Convey("Then speaker boards rank by per-tournament average", func() {
				So(err, ShouldBeNil)
				top := results.Global.Speakers[0]
				So(top.AvgPerTournament, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When a duplicate digest is registered", func() {
			_, err := svc.RegisterTournament(ctx, "states copy", 1.0, roundTable(
				[]string{"A", "B", "Aff", "", ""},
			), "digest-a")

			Convey("Then the upload is rejected", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})

	Convey("Given a tournament with an unusable table", t, func() {
		svc := service.New()
		tables := []model.Table{{
			Labels: []string{"Round", "Judge"},
			Rows:   []model.RawRow{{"Round": "1"}},
		}}
		_, err := svc.RegisterTournament(ctx, "broken", 1.0, tables, "digest-c")
		So(err, ShouldBeNil)

		Convey("When processing", func() {
			results, err := svc.Process(ctx, service.Settings{})

			Convey("Then the table is reported, not fatal", func() {
				So(err, ShouldBeNil)
				So(results.Skips, ShouldHaveLength, 1)
				So(results.Skips[0].Tournament, ShouldEqual, "broken")
			})
		})
	})

	Convey("Given an empty service", t, func() {
		svc := service.New()

		Convey("When processing with nothing registered", func() {
			results, err := svc.Process(ctx, service.Settings{})

			Convey("Then empty boards are returned without error", func() {
				So(err, ShouldBeNil)
				So(results.PerTournament, ShouldBeEmpty)
				So(results.Global.Teams, ShouldBeEmpty)
				So(results.Global.Speakers, ShouldBeEmpty)
			})
		})
	})
}
