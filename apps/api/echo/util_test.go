package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	echoapi "github.com/trezcool/attendo/apps/api/echo"
	"github.com/trezcool/attendo/core"
	"github.com/trezcool/attendo/core/attendance"
	"github.com/trezcool/attendo/core/student"
	dummydb "github.com/trezcool/attendo/storage/database/dummy"
	"github.com/trezcool/attendo/storage/fixtures"
)

// testNow is the Friday of the second week covered by the fixtures.
var testNow = time.Date(2024, 9, 13, 8, 0, 0, 0, time.UTC)

type testEnv struct {
	server   *echoapi.Server
	logger   *logMock
	students []student.Student
	records  []attendance.Record
}

// setup returns a Server seeded with the embedded fixtures, with the clock frozen at testNow.
func setup(t *testing.T) *testEnv {
	t.Cleanup(core.SetNowFunc(func() time.Time { return testNow }))

	students, records, err := fixtures.Load(core.FixturesConfig{})
	if err != nil {
		t.Fatalf("fixtures.Load() failed: %v", err)
	}
	db, err := dummydb.Open(students, records)
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}

	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)

	logger := new(logMock)
	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:          &core.Config{AppName: "Attendo", TestMode: true},
		Logger:        logger,
		StudentSvc:    student.NewService(dummydb.NewStudentRepository(db)),
		AttendanceSvc: attendance.NewService(dummydb.NewAttendanceRepository(db)),
		Insights:      attendance.NewSyntheticInsights(1),
		Validate:      validate,
		Translator:    translator,
	})
	return &testEnv{server: server, logger: logger, students: students, records: records}
}

func (env *testEnv) do(method, path string, data ...[]byte) *httptest.ResponseRecorder {
	req, rec := newRequest(method, path, data...)
	env.server.ServeHTTP(rec, req)
	return rec
}

// logMock records error messages.
type logMock struct {
	mu     sync.Mutex
	errors []string
}

func (l *logMock) Debug(string, ...interface{}) {}
func (l *logMock) Info(string, ...interface{})  {}
func (l *logMock) Warn(string, ...interface{})  {}
func (l *logMock) Fatal(string, ...interface{}) {}

func (l *logMock) Error(msg string, _ ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
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
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	assert.Equal(t, tt.wantCode, rec.Code, "code; body = %s", rec.Body.String())
	if tt.wantData != nil {
		assert.JSONEq(t, string(tt.wantData), rec.Body.String())
	}
}

func runHTTPTests(t *testing.T, env *testEnv, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(tt.method, tt.path, tt.body)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v; body = %s", err, rec.Body.String())
	}
}
