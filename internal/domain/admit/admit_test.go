package admit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/crewdeck/rolecall/internal/domain/admit"
	. "github.com/smartystreets/goconvey/convey"
)

const pattern = `^[a-z0-9._%+-]+@([a-z0-9-]+\.)*example\.edu$`

func TestEmailGatekeeper_Admit(t *testing.T) {
	ctx := context.Background()

	Convey("Given a gatekeeper with only a domain pattern", t, func() {
		gate, err := admit.NewEmailGatekeeper(pattern)
		So(err, ShouldBeNil)

		Convey("When admitting an address on the organizational domain", func() {
			So(gate.Admit(ctx, "ana@example.edu"), ShouldBeNil)
		})

		Convey("When the address uses a subdomain", func() {
			So(gate.Admit(ctx, "ana@student.example.edu"), ShouldBeNil)
		})

		Convey("When the address is upper-cased or padded", func() {
			Convey("Then normalization makes it admissible", func() {
				So(gate.Admit(ctx, "  ANA@Example.EDU  "), ShouldBeNil)
			})
		})

		Convey("When the address is off-domain", func() {
			err := gate.Admit(ctx, "ana@gmail.com")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, admit.ErrBadAddress), ShouldBeTrue)
		})

		Convey("When the address is empty", func() {
			err := gate.Admit(ctx, "")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, admit.ErrBadAddress), ShouldBeTrue)
		})
	})

	Convey("Given a gatekeeper with an allowlist", t, func() {
		gate, err := admit.NewEmailGatekeeper(pattern,
			admit.WithAllowlist([]string{"Ana@example.edu", "bo@example.edu"}),
		)
		So(err, ShouldBeNil)

		Convey("When the address is listed (any casing)", func() {
			So(gate.Admit(ctx, "ana@example.edu"), ShouldBeNil)
			So(gate.Admit(ctx, "BO@EXAMPLE.EDU"), ShouldBeNil)
		})

		Convey("When the address matches the domain but is not listed", func() {
			err := gate.Admit(ctx, "eve@example.edu")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, admit.ErrNotAllowed), ShouldBeTrue)
		})

		Convey("When the address fails the domain check", func() {
			Convey("Then the domain error wins over the allowlist", func() {
				err := gate.Admit(ctx, "ana@elsewhere.org")
				So(errors.Is(err, admit.ErrBadAddress), ShouldBeTrue)
			})
		})
	})

	Convey("Given an invalid domain pattern", t, func() {
		_, err := admit.NewEmailGatekeeper("([")

		Convey("Then construction fails with ErrBadPattern", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, admit.ErrBadPattern), ShouldBeTrue)
		})
	})
}
