package echoapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/campuskit/backend/core/faculty"
)

func createFaculty(t *testing.T, deps testDeps, initials, name, dept string) faculty.Faculty {
	t.Helper()
	fac, err := deps.facultySvc.Create(context.Background(), faculty.NewFaculty{
		Initials:   initials,
		Name:       name,
		Department: dept,
	})
	if err != nil {
		t.Fatalf("createFaculty() failed: %v", err)
	}
	return fac
}

func Test_facultyApi_create(t *testing.T) {
	deps := setup(t)
	createFaculty(t, deps, "MSI", "Mohammad Shariful Islam", "CSE")

	tests := []httpTest{
		{
			name:     "OK",
			body:     marshallObj(t, faculty.NewFaculty{Initials: "TAm", Name: "Tanjina Akter", Department: "CSE"}),
			wantCode: http.StatusCreated,
		},
		{
			name:     "duplicate initials",
			body:     marshallObj(t, faculty.NewFaculty{Initials: "MSI", Name: "Someone Else", Department: "CSE"}),
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"initials": "a faculty member with these initials already exists"}),
		},
		{
			name:     "invalid email",
			body:     marshallObj(t, faculty.NewFaculty{Initials: "XYZ", Name: "X", Email: "nope", Department: "CSE"}),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing fields",
			body:     marshallObj(t, faculty.NewFaculty{}),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/faculty", tt.body)
			deps.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_facultyApi_queryAndRetrieve(t *testing.T) {
	deps := setup(t)
	msi := createFaculty(t, deps, "MSI", "Mohammad Shariful Islam", "CSE")
	tam := createFaculty(t, deps, "TAM", "Tanjina Akter", "EEE")

	t.Run("get all", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/faculty")
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantData: marshallObj(t, []faculty.Faculty{msi, tam})}, rec)
	})

	t.Run("filter by department", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/faculty?department=EEE")
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantData: marshallObj(t, []faculty.Faculty{tam})}, rec)
	})

	t.Run("search by name", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/faculty?search=shariful")
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantData: marshallObj(t, []faculty.Faculty{msi})}, rec)
	})

	t.Run("retrieve embeds the rating summary", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/faculty/"+msi.ID)
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantData: marshallObj(t, FacultyDetail{Faculty: msi})}, rec)
	})

	t.Run("retrieve unknown", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/faculty/nope")
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)}, rec)
	})
}

func Test_facultyApi_reviews(t *testing.T) {
	deps := setup(t)
	msi := createFaculty(t, deps, "MSI", "Mohammad Shariful Islam", "CSE")

	t.Run("create review", func(t *testing.T) {
		body := marshallObj(t, faculty.NewReview{
			CourseCode: "CSE2215", Rating: 5, Difficulty: 3, WouldTakeAgain: true, Comment: "Great explanations",
		})
		req, rec := newRequest(http.MethodPost, "/v1/faculty/"+msi.ID+"/reviews", body)
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusCreated}, rec)
	})

	t.Run("review of unknown faculty", func(t *testing.T) {
		body := marshallObj(t, faculty.NewReview{CourseCode: "CSE2215", Rating: 5, Difficulty: 3})
		req, rec := newRequest(http.MethodPost, "/v1/faculty/nope/reviews", body)
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)}, rec)
	})

	t.Run("rating out of range", func(t *testing.T) {
		body := marshallObj(t, faculty.NewReview{CourseCode: "CSE2215", Rating: 6, Difficulty: 3})
		req, rec := newRequest(http.MethodPost, "/v1/faculty/"+msi.ID+"/reviews", body)
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusBadRequest}, rec)
	})

	t.Run("summary aggregates", func(t *testing.T) {
		if _, err := deps.facultySvc.AddReview(context.Background(), msi.ID, faculty.NewReview{
			CourseCode: "CSE2217", Rating: 3, Difficulty: 5, WouldTakeAgain: false,
		}); err != nil {
			t.Fatalf("AddReview() failed: %v", err)
		}

		req, rec := newRequest(http.MethodGet, "/v1/faculty/"+msi.ID)
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{}, rec)

		var detail FacultyDetail
		unmarshallObj(t, rec.Body.Bytes(), &detail)
		want := faculty.RatingSummary{Count: 2, AvgRating: 4, AvgDifficulty: 4, WouldTakeAgainPct: 50}
		if detail.Summary != want {
			t.Errorf("summary = %+v, want %+v", detail.Summary, want)
		}
	})
}

func Test_facultyApi_requests(t *testing.T) {
	deps := setup(t)

	submit := func(t *testing.T, initials string) faculty.Request {
		t.Helper()
		body := marshallObj(t, faculty.NewRequest{Initials: initials, Name: "New Teacher", Department: "CSE"})
		req, rec := newRequest(http.MethodPost, "/v1/faculty-requests", body)
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusCreated}, rec)

		var fr faculty.Request
		unmarshallObj(t, rec.Body.Bytes(), &fr)
		if fr.Status != faculty.StatusPending {
			t.Fatalf("status = %q, want pending", fr.Status)
		}
		return fr
	}

	t.Run("approve creates the faculty entry", func(t *testing.T) {
		fr := submit(t, "ABC")

		body := marshallObj(t, faculty.DecideRequest{Approve: true})
		req, rec := newRequest(http.MethodPut, "/v1/faculty-requests/"+fr.ID, body)
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{}, rec)

		var decided faculty.Request
		unmarshallObj(t, rec.Body.Bytes(), &decided)
		if decided.Status != faculty.StatusApproved || !decided.DecidedAt.Valid {
			t.Errorf("decided = %+v, want approved with timestamp", decided)
		}

		if _, err := deps.facultySvc.GetByInitials(context.Background(), "ABC"); err != nil {
			t.Errorf("approved faculty missing from directory: %v", err)
		}
	})

	t.Run("reject leaves the directory alone", func(t *testing.T) {
		fr := submit(t, "DEF")

		body := marshallObj(t, faculty.DecideRequest{Approve: false})
		req, rec := newRequest(http.MethodPut, "/v1/faculty-requests/"+fr.ID, body)
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{}, rec)

		var decided faculty.Request
		unmarshallObj(t, rec.Body.Bytes(), &decided)
		if decided.Status != faculty.StatusRejected {
			t.Errorf("status = %q, want rejected", decided.Status)
		}
		if _, err := deps.facultySvc.GetByInitials(context.Background(), "DEF"); err == nil {
			t.Error("rejected request must not create a faculty entry")
		}
	})

	t.Run("double decision is a validation error", func(t *testing.T) {
		fr := submit(t, "GHI")
		body := marshallObj(t, faculty.DecideRequest{Approve: true})

		req, rec := newRequest(http.MethodPut, "/v1/faculty-requests/"+fr.ID, body)
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{}, rec)

		req, rec = newRequest(http.MethodPut, "/v1/faculty-requests/"+fr.ID, body)
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, httpErr{Error: "request has already been decided"}),
		}, rec)
	})

	t.Run("decide unknown request", func(t *testing.T) {
		body := marshallObj(t, faculty.DecideRequest{Approve: true})
		req, rec := newRequest(http.MethodPut, "/v1/faculty-requests/nope", body)
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)}, rec)
	})

	t.Run("pending filter", func(t *testing.T) {
		pending := submit(t, "JKL")

		req, rec := newRequest(http.MethodGet, "/v1/faculty-requests?status=pending")
		deps.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{}, rec)

		var reqs []faculty.Request
		unmarshallObj(t, rec.Body.Bytes(), &reqs)
		if len(reqs) != 1 || reqs[0].ID != pending.ID {
			t.Errorf("pending requests = %+v, want only %s", reqs, pending.ID)
		}
	})
}
