package assign_test

import (
	"testing"

	"github.com/crewdeck/rolecall/internal/domain/assign"
	"github.com/crewdeck/rolecall/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

var priority = []string{"finance", "space", "media"}

func scored(email string, fin, space, media float64) assign.Scored {
	return assign.Scored{
		Applicant: model.Applicant{Email: email},
		Scores:    model.Scores{"finance": fin, "space": space, "media": media},
	}
}

func caps(fin, space, media int) map[string]int {
	return map[string]int{"finance": fin, "space": space, "media": media}
}

func TestAssigner_Assign(t *testing.T) {
	Convey("Given an assigner with the reference role priority", t, func() {
		assigner := assign.NewAssigner(assign.WithRolePriority(priority))

		Convey("When assigning under ample capacity", func() {
			results := assigner.Assign([]assign.Scored{
				scored("fin@x", 3, 0, 0),
				scored("media@x", 0, 0, 2),
				scored("space@x", 0, 1, 0),
			}, caps(5, 5, 5))

			Convey("Then everyone gets their top-scored role as primary", func() {
				byEmail := indexByEmail(results)
				So(byEmail["fin@x"].Assignment.Primary, ShouldEqual, "finance")
				So(byEmail["media@x"].Assignment.Primary, ShouldEqual, "media")
				So(byEmail["space@x"].Assignment.Primary, ShouldEqual, "space")
			})

			Convey("And results come back ranked by total, descending", func() {
				So(results[0].Applicant.Email, ShouldEqual, "fin@x")
				So(results[1].Applicant.Email, ShouldEqual, "media@x")
				So(results[2].Applicant.Email, ShouldEqual, "space@x")
			})
		})

		Convey("When totals tie", func() {
			results := assigner.Assign([]assign.Scored{
				scored("first@x", 0, 2, 0),
				scored("second@x", 0, 0, 2),
				scored("third@x", 2, 0, 0),
			}, caps(5, 5, 5))

			Convey("Then the input order is preserved among equals", func() {
				So(results[0].Applicant.Email, ShouldEqual, "first@x")
				So(results[1].Applicant.Email, ShouldEqual, "second@x")
				So(results[2].Applicant.Email, ShouldEqual, "third@x")
			})
		})

		Convey("When an applicant's role scores tie", func() {
			results := assigner.Assign([]assign.Scored{
				scored("tied@x", 1, 1, 0),
			}, caps(5, 5, 5))

			Convey("Then the fixed priority order breaks the tie", func() {
				So(results[0].Assignment.Primary, ShouldEqual, "finance")
				So(results[0].Assignment.Secondary, ShouldEqual, "space")
			})
		})

		Convey("When the top-preference role is out of capacity", func() {
			results := assigner.Assign([]assign.Scored{
				scored("a@x", 3, 1, 0),
				scored("b@x", 2, 1, 0),
			}, caps(1, 5, 5))

			Convey("Then the walk falls through to the next role with capacity", func() {
				byEmail := indexByEmail(results)
				So(byEmail["a@x"].Assignment.Primary, ShouldEqual, "finance")
				So(byEmail["b@x"].Assignment.Primary, ShouldEqual, "space")
			})

			Convey("And the secondary is the role after the primary in the walk", func() {
				byEmail := indexByEmail(results)
				So(byEmail["a@x"].Assignment.Secondary, ShouldEqual, "space")
				So(byEmail["b@x"].Assignment.Secondary, ShouldEqual, "media")
			})

			Convey("And neither assignment is flagged as overflow", func() {
				for _, r := range results {
					So(r.Assignment.Overflow, ShouldBeFalse)
				}
			})
		})

		Convey("When every role is out of capacity", func() {
			// P(finance=3) takes the only finance slot; Q(finance=2) then
			// finds every role exhausted.
			results := assigner.Assign([]assign.Scored{
				scored("p@x", 3, 1, 0.5),
				scored("q@x", 2, 1, 0.5),
			}, caps(1, 0, 0))

			byEmail := indexByEmail(results)

			Convey("Then P takes the last finance slot normally", func() {
				So(byEmail["p@x"].Assignment.Primary, ShouldEqual, "finance")
				So(byEmail["p@x"].Assignment.Overflow, ShouldBeFalse)
			})

			Convey("And Q is forced onto its top preference as overflow", func() {
				So(byEmail["q@x"].Assignment.Primary, ShouldEqual, "finance")
				So(byEmail["q@x"].Assignment.Overflow, ShouldBeTrue)
			})

			Convey("And Q's secondary is its next-highest role", func() {
				So(byEmail["q@x"].Assignment.Secondary, ShouldEqual, "space")
			})
		})

		Convey("When capacities are respected overall", func() {
			input := []assign.Scored{
				scored("a@x", 5, 0, 0),
				scored("b@x", 4, 0, 0),
				scored("c@x", 3, 0, 0),
				scored("d@x", 2, 1, 0),
			}
			results := assigner.Assign(input, caps(2, 2, 2))

			Convey("Then no capped role exceeds its cap without overflow", func() {
				counts := map[string]int{}
				for _, r := range results {
					if !r.Assignment.Overflow {
						counts[r.Assignment.Primary]++
					}
				}
				So(counts["finance"], ShouldBeLessThanOrEqualTo, 2)
				So(counts["space"], ShouldBeLessThanOrEqualTo, 2)
				So(counts["media"], ShouldBeLessThanOrEqualTo, 2)
			})

			Convey("And every applicant has a primary", func() {
				for _, r := range results {
					So(r.Assignment.Primary, ShouldNotBeEmpty)
				}
			})
		})

		Convey("When the same input is assigned twice", func() {
			input := []assign.Scored{
				scored("a@x", 2, 1, 0),
				scored("b@x", 1, 2, 0),
				scored("c@x", 1, 1, 1),
			}
			first := assigner.Assign(input, caps(1, 1, 1))
			second := assigner.Assign(input, caps(1, 1, 1))

			Convey("Then the outcomes are identical", func() {
				So(second, ShouldResemble, first)
			})
		})
	})
}

func indexByEmail(results []assign.Result) map[string]assign.Result {
	out := make(map[string]assign.Result, len(results))
	for _, r := range results {
		out[r.Applicant.Email] = r
	}
	return out
}
