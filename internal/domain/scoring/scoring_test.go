package scoring_test

import (
	"testing"

	"github.com/crewdeck/rolecall/internal/domain/model"
	"github.com/crewdeck/rolecall/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func testTable() map[string][]scoring.Signal {
	return map[string][]scoring.Signal{
		"finance": {
			{Field: scoring.FieldTrait, Match: scoring.MatchEquals, Value: "analyst", Weight: 1.0},
			{Field: scoring.FieldPreference, Match: scoring.MatchEquals, Value: "finance", Weight: 1.0},
			{Field: scoring.FieldInterests, Match: scoring.MatchContains, Value: "budget", Weight: 0.5},
			{Field: scoring.FieldGoal, Match: scoring.MatchContains, Value: "treasurer", Weight: 1.0},
		},
		"space": {
			{Field: scoring.FieldTrait, Match: scoring.MatchEquals, Value: "organizer", Weight: 1.0},
			{Field: scoring.FieldInterests, Match: scoring.MatchContains, Value: "logistics", Weight: 0.5},
		},
		"media": {
			{Field: scoring.FieldPreference, Match: scoring.MatchEquals, Value: "media", Weight: 1.0},
			{Field: scoring.FieldInterests, Match: scoring.MatchContains, Value: "video", Weight: 0.5},
		},
	}
}

func TestRuleScorer_Score(t *testing.T) {
	Convey("Given a rule scorer with the reference signal table", t, func() {
		scorer := scoring.NewRuleScorer(
			scoring.WithRoles([]string{"finance", "space", "media"}),
			scoring.WithSignals(testTable()),
		)

		Convey("When scoring an applicant matching several finance signals", func() {
			a := model.Applicant{
				Email:     "ana@example.edu",
				Trait:     "analyst",
				Interests: "Budgets, chess",
				Goal:      "become club Treasurer",
			}
			scores := scorer.Score(a)

			Convey("Then the finance score accumulates every matching weight", func() {
				So(scores["finance"], ShouldEqual, 2.5) // trait 1.0 + interests 0.5 + goal 1.0
			})

			Convey("And non-matching roles score zero", func() {
				So(scores["space"], ShouldEqual, 0)
				So(scores["media"], ShouldEqual, 0)
			})

			Convey("And the total is the sum of all components", func() {
				So(scores.Total(), ShouldEqual, 2.5)
			})
		})

		Convey("When an applicant matches signals for multiple roles", func() {
			a := model.Applicant{
				Email:      "multi@example.edu",
				Trait:      "organizer",
				Preference: "media",
				Interests:  "logistics, video",
			}
			scores := scorer.Score(a)

			Convey("Then every role accumulates independently", func() {
				So(scores["space"], ShouldEqual, 1.5)
				So(scores["media"], ShouldEqual, 1.5)
				So(scores["finance"], ShouldEqual, 0)
			})
		})

		Convey("When free-text matching is involved", func() {
			Convey("Then it is case-insensitive", func() {
				scores := scorer.Score(model.Applicant{Interests: "BUDGET PLANNING"})
				So(scores["finance"], ShouldEqual, 0.5)
			})

			Convey("But single-choice matching is exact", func() {
				scores := scorer.Score(model.Applicant{Trait: "Analyst"})
				So(scores["finance"], ShouldEqual, 0)
			})
		})

		Convey("When scoring an applicant with all fields empty", func() {
			scores := scorer.Score(model.Applicant{Email: "empty@example.edu"})

			Convey("Then every role scores zero rather than failing", func() {
				So(scores["finance"], ShouldEqual, 0)
				So(scores["space"], ShouldEqual, 0)
				So(scores["media"], ShouldEqual, 0)
				So(scores.Total(), ShouldEqual, 0)
			})
		})

		Convey("When scoring the same applicant twice", func() {
			a := model.Applicant{Trait: "analyst", Interests: "budget"}

			Convey("Then the vectors are identical", func() {
				first := scorer.Score(a)
				second := scorer.Score(a)
				So(second, ShouldResemble, first)
			})
		})
	})

	Convey("Given a scorer with malformed table entries", t, func() {
		scorer := scoring.NewRuleScorer(
			scoring.WithRoles([]string{"finance"}),
			scoring.WithSignals(map[string][]scoring.Signal{
				"finance": {
					{Field: "unknown_field", Match: scoring.MatchEquals, Value: "x", Weight: 1.0},
					{Field: scoring.FieldTrait, Match: "unknown_match", Value: "x", Weight: 1.0},
					{Field: scoring.FieldTrait, Match: scoring.MatchEquals, Value: "analyst", Weight: -2.0},
					{Field: scoring.FieldTrait, Match: scoring.MatchEquals, Value: "analyst", Weight: 1.0},
				},
			}),
		)

		Convey("When scoring, bad entries contribute nothing", func() {
			scores := scorer.Score(model.Applicant{Trait: "analyst"})
			So(scores["finance"], ShouldEqual, 1.0)
		})
	})
}
