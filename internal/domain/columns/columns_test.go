package columns_test

import (
	"testing"

	columns "github.com/podium-rank/podium/internal/domain/columns"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Given clean Tabroom-style headers", t, func() {
		labels := []string{"Aff", "Neg", "Win", "Aff Points", "Neg Points"}
		m := columns.Resolve(labels)

		Convey("Then every role resolves to its source label", func() {
			So(m[columns.AffTeam], ShouldEqual, "Aff")
			So(m[columns.NegTeam], ShouldEqual, "Neg")
			So(m[columns.Winner], ShouldEqual, "Win")
			So(m[columns.AffPoints], ShouldEqual, "Aff Points")
			So(m[columns.NegPoints], ShouldEqual, "Neg Points")
			So(m.Missing(), ShouldBeEmpty)
			So(m.Usable(), ShouldBeTrue)
		})
	})

	Convey("Given messy headers with tabs, quotes and casing", t, func() {
		labels := []string{` "AFFIRMATIVE" `, "negative\tteam", "Winner?", "aff\t\tpts", "'NEG SCORE'"}
		m := columns.Resolve(labels)

		Convey("Then normalization still resolves every role", func() {
			So(m[columns.AffTeam], ShouldEqual, ` "AFFIRMATIVE" `)
			So(m[columns.NegTeam], ShouldEqual, "negative\tteam")
			So(m[columns.Winner], ShouldEqual, "Winner?")
			So(m[columns.AffPoints], ShouldEqual, "aff\t\tpts")
			So(m[columns.NegPoints], ShouldEqual, "'NEG SCORE'")
		})
	})

	Convey("Given headers without side identifiers", t, func() {
		m := columns.Resolve([]string{"Round", "Judge", "Win"})

		Convey("Then the map is partial and unusable", func() {
			So(m.Usable(), ShouldBeFalse)
			So(m.Missing(), ShouldContain, columns.AffTeam)
			So(m.Missing(), ShouldContain, columns.NegTeam)
			So(m[columns.Winner], ShouldEqual, "Win")
		})
	})

	Convey("Given only score columns for the sides", t, func() {
		m := columns.Resolve([]string{"Aff Points", "Neg Points"})

		Convey("Then the prefix fallback claims them as team identifiers", func() {
			So(m[columns.AffTeam], ShouldEqual, "Aff Points")
			So(m[columns.NegTeam], ShouldEqual, "Neg Points")
			So(m.Usable(), ShouldBeTrue)
		})
	})

	Convey("Given optional roles missing", t, func() {
		m := columns.Resolve([]string{"Aff", "Neg"})

		Convey("Then the table is usable and the absences are reported", func() {
			So(m.Usable(), ShouldBeTrue)
			So(m.Missing(), ShouldResemble, []columns.Role{columns.Winner, columns.AffPoints, columns.NegPoints})
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Given labels needing cleanup", t, func() {
		Convey("Then whitespace runs collapse and quotes are stripped", func() {
			So(columns.Normalize("  Aff \t Points  "), ShouldEqual, "Aff Points")
			So(columns.Normalize(`"Win"`), ShouldEqual, "Win")
			So(columns.Normalize("'Neg'\t'Team'"), ShouldEqual, "Neg Team")
		})
	})
}
