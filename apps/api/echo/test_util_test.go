package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/campuskit/backend/core"
	"github.com/campuskit/backend/core/calendar"
	"github.com/campuskit/backend/core/course"
	"github.com/campuskit/backend/core/faculty"
	"github.com/campuskit/backend/core/grading"
	"github.com/campuskit/backend/core/planner"
	dummydb "github.com/campuskit/backend/storage/database/dummy"
)

type httpErr struct {
	Error string `json:"error"`
}

var errNotFound = httpErr{Error: "not found"}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

// testLogger satisfies core.Logger; everything lands in the test log.
type testLogger struct {
	t *testing.T
}

func (l testLogger) Debug(msg string, args ...interface{}) { l.t.Logf("DEBUG: %s %v", msg, args) }
func (l testLogger) Info(msg string, args ...interface{})  { l.t.Logf("INFO: %s %v", msg, args) }
func (l testLogger) Warn(msg string, args ...interface{})  { l.t.Logf("WARN: %s %v", msg, args) }
func (l testLogger) Error(msg string, args ...interface{}) { l.t.Logf("ERROR: %s %v", msg, args) }
func (l testLogger) Fatal(msg string, args ...interface{}) { l.t.Fatalf("FATAL: %s %v", msg, args) }

type testDeps struct {
	app         Server
	courseSvc   *course.Service
	calendarSvc *calendar.Service
	facultySvc  *faculty.Service
	plannerSvc  *planner.Service
}

func setup(t *testing.T) testDeps {
	t.Helper()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	deps := testDeps{
		courseSvc:   course.NewService(dummydb.NewCourseRepository(db)),
		calendarSvc: calendar.NewService(dummydb.NewCalendarRepository(db)),
		facultySvc:  faculty.NewService(dummydb.NewFacultyRepository(db)),
		plannerSvc:  planner.NewService(dummydb.NewPlannerRepository(db)),
	}

	validate := validator.New()
	translator := newTestTranslator()
	core.InitValidators(validate, translator)
	grading.InitValidators(validate, translator)

	deps.app = NewServer(ServerDeps{
		Conf:           &core.Config{TestMode: true},
		Logger:         testLogger{t: t},
		DisableReqLogs: true,
		CourseSvc:      deps.courseSvc,
		CalendarSvc:    deps.calendarSvc,
		FacultySvc:     deps.facultySvc,
		PlannerSvc:     deps.plannerSvc,
		Validate:       validate,
		Translator:     translator,
	})
	return deps
}

func newTestTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func unmarshallObj(t *testing.T, data []byte, obj interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, obj); err != nil {
		t.Fatalf("unmarshallObj() failed: %v (data: %s)", err, data)
	}
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	wantCode := tt.wantCode
	if wantCode == 0 {
		wantCode = http.StatusOK
	}
	assert.Equal(t, wantCode, rec.Code, "body: %s", rec.Body.String())
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
