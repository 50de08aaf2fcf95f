package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/crewdeck/rolecall/internal/adapters/http/api"
	"github.com/crewdeck/rolecall/internal/adapters/repository"
	service "github.com/crewdeck/rolecall/internal/app"
	"github.com/crewdeck/rolecall/internal/domain/admit"
	"github.com/crewdeck/rolecall/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeDeps is a canned Dependencies implementation for handler tests.
type fakeDeps struct {
	submitErr error
	submitted []model.Applicant
	entries   []api.Entry
}

func (f *fakeDeps) Submit(_ context.Context, a model.Applicant) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = append(f.submitted, a)
	return nil
}

func (f *fakeDeps) Roster(_ context.Context) ([]api.Entry, error) {
	return f.entries, nil
}

func (f *fakeDeps) Lookup(_ context.Context, email string) (api.Entry, error) {
	for _, e := range f.entries {
		if e.Email == email {
			return e, nil
		}
	}
	return api.Entry{}, repository.ErrNotFound
}

func (f *fakeDeps) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true}
}

func newMux(deps *fakeDeps) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, deps).Register(context.Background(), mux)
	return mux
}

func postJSON(mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func get(mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Code
}

func TestHandlePostSubmission(t *testing.T) {
	Convey("Given the submissions endpoint", t, func() {
		deps := &fakeDeps{}
		mux := newMux(deps)

		Convey("When posting a well-formed submission", func() {
			rec := postJSON(mux, "/submissions",
				`{"email":"ana@example.edu","trait":"analyst","goal":"treasury"}`)

			Convey("Then it is acknowledged with 202", func() {
				So(rec.Code, ShouldEqual, http.StatusAccepted)
				So(len(deps.submitted), ShouldEqual, 1)
				So(deps.submitted[0].Email, ShouldEqual, "ana@example.edu")
				So(deps.submitted[0].Goal, ShouldEqual, "treasury")
			})
		})

		Convey("When the body is not JSON", func() {
			rec := postJSON(mux, "/submissions", `{not json`)

			Convey("Then the request is rejected with 400", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(errorCode(t, rec), ShouldEqual, "bad_request")
			})
		})

		Convey("When the email field is missing", func() {
			rec := postJSON(mux, "/submissions", `{"trait":"analyst"}`)

			Convey("Then the request is rejected with 400", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(errorCode(t, rec), ShouldEqual, "bad_request")
			})
		})

		Convey("When the address is off-domain", func() {
			deps.submitErr = admit.ErrBadAddress
			rec := postJSON(mux, "/submissions", `{"email":"eve@gmail.com"}`)

			Convey("Then the handler answers 400 bad_address", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(errorCode(t, rec), ShouldEqual, "bad_address")
			})
		})

		Convey("When the address is not on the allowlist", func() {
			deps.submitErr = admit.ErrNotAllowed
			rec := postJSON(mux, "/submissions", `{"email":"eve@example.edu"}`)

			Convey("Then the handler answers 403 not_allowed", func() {
				So(rec.Code, ShouldEqual, http.StatusForbidden)
				So(errorCode(t, rec), ShouldEqual, "not_allowed")
			})
		})

		Convey("When the intake queue is full", func() {
			deps.submitErr = service.ErrBackpressure
			rec := postJSON(mux, "/submissions", `{"email":"ana@example.edu"}`)

			Convey("Then the handler answers 429 backpressure", func() {
				So(rec.Code, ShouldEqual, http.StatusTooManyRequests)
				So(errorCode(t, rec), ShouldEqual, "backpressure")
			})
		})

		Convey("When using the wrong method", func() {
			rec := get(mux, "/submissions")

			Convey("Then the route is not found", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestHandleGetRoster(t *testing.T) {
	Convey("Given a roster with two entries", t, func() {
		deps := &fakeDeps{entries: []api.Entry{
			{Email: "ana@example.edu", Total: 3.5, Primary: "finance", Crew: "Crew 1"},
			{Email: "bo@example.edu", Total: 2.0, Primary: "finance", Floater: true},
		}}
		mux := newMux(deps)

		Convey("When fetching the roster", func() {
			rec := get(mux, "/roster")

			Convey("Then all entries are returned in order", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var got []api.Entry
				So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
				So(len(got), ShouldEqual, 2)
				So(got[0].Email, ShouldEqual, "ana@example.edu")
				So(got[1].Floater, ShouldBeTrue)
			})
		})
	})
}

func TestHandleGetAssignment(t *testing.T) {
	Convey("Given an assignment lookup endpoint", t, func() {
		deps := &fakeDeps{entries: []api.Entry{
			{Email: "ana@example.edu", Primary: "space", Secondary: "finance", Crew: "Crew 2"},
		}}
		mux := newMux(deps)

		Convey("When looking up a known applicant", func() {
			rec := get(mux, "/assignments/ana@example.edu")

			Convey("Then the entry is returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var got api.Entry
				So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
				So(got.Primary, ShouldEqual, "space")
				So(got.Crew, ShouldEqual, "Crew 2")
			})
		})

		Convey("When looking up an unknown applicant", func() {
			rec := get(mux, "/assignments/ghost@example.edu")

			Convey("Then the handler answers 404", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
				So(errorCode(t, rec), ShouldEqual, "not_found")
			})
		})

		Convey("When the path parameter is empty", func() {
			rec := get(mux, "/assignments/")

			Convey("Then the handler answers 400", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestHandleStats(t *testing.T) {
	Convey("Given the stats endpoint", t, func() {
		mux := newMux(&fakeDeps{})

		Convey("When fetching stats", func() {
			rec := get(mux, "/stats")

			Convey("Then the provider payload is encoded", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var got map[string]interface{}
				So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
				So(got["started"], ShouldEqual, true)
			})
		})
	})
}

func TestHandleHealth(t *testing.T) {
	Convey("Given the health endpoint", t, func() {
		mux := newMux(&fakeDeps{})

		Convey("When probing health", func() {
			rec := get(mux, "/healthz")

			Convey("Then the service reports healthy", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}
