package tests

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
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/shule/apps/api/echo"
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/course"
	"github.com/trezcool/shule/core/progress"
	"github.com/trezcool/shule/core/quiz"
	"github.com/trezcool/shule/core/user"
	emailsvc "github.com/trezcool/shule/services/email"
	inmemdb "github.com/trezcool/shule/storage/inmem"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type testApp struct {
	server echoapi.Server
	conf   *core.Config

	usrSvc  *user.Service
	crsSvc  *course.Service
	quizSvc *quiz.Service
	progSvc *progress.Service
}

func setup(t *testing.T) *testApp {
	t.Helper()

	conf := core.NewConfig()
	conf.Debug = false
	conf.TestMode = true

	// set up DB & services
	db, err := inmemdb.Open()
	require.NoError(t, err)

	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	usrSvc := user.NewService(inmemdb.NewUserRepository(db), mailSvc, conf)
	crsSvc := course.NewService(inmemdb.NewCourseRepository(db))
	progSvc := progress.NewService(inmemdb.NewProgressRepository(db), usrSvc, crsSvc)
	quizSvc := quiz.NewService(quiz.NewEngine(quiz.DefaultBank()), progSvc)

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	// set up server
	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:        conf,
			Logger:      nopLogger{},
			UserSvc:     usrSvc,
			CourseSvc:   crsSvc,
			QuizSvc:     quizSvc,
			ProgressSvc: progSvc,
			Validate:    validate,
			Translator:  translator,
		},
	)

	return &testApp{
		server:  server,
		conf:    conf,
		usrSvc:  usrSvc,
		crsSvc:  crsSvc,
		quizSvc: quizSvc,
		progSvc: progSvc,
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func (app *testApp) do(tt httpTest) *httptest.ResponseRecorder {
	method := tt.method
	if method == "" {
		method = http.MethodGet
	}
	req := httptest.NewRequest(method, tt.path, bytes.NewReader(tt.body))
	req.Header.Set("Content-Type", "application/json")
	if tt.token != "" {
		req.Header.Set("Authorization", "Bearer "+tt.token)
	}
	rec := httptest.NewRecorder()
	app.server.ServeHTTP(rec, req)
	return rec
}

func (app *testApp) checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	wantCode := tt.wantCode
	if wantCode == 0 {
		wantCode = http.StatusOK
	}
	assert.Equal(t, wantCode, rec.Code, rec.Body.String())
	if tt.wantData != nil {
		assert.JSONEq(t, string(tt.wantData), rec.Body.String())
	}
}

// createUser registers a fixture user directly against the service.
func (app *testApp) createUser(t *testing.T, uname string, role user.Role) user.User {
	t.Helper()
	usr, err := app.usrSvc.Register(user.NewUser{Username: uname, Password: "s3cret", Role: role})
	require.NoError(t, err)
	return usr
}

func (app *testApp) createCourse(t *testing.T, usr user.User, title, content string) course.Course {
	t.Helper()
	crs, err := app.crsSvc.Create(auth.NewSession(usr), course.NewCourse{Title: title, Content: content})
	require.NoError(t, err)
	return crs
}

func (app *testApp) getToken(t *testing.T, usr user.User) string {
	t.Helper()
	token, err := echoapi.GenerateToken(app.conf, echoapi.GetUserClaims(app.conf, usr))
	require.NoError(t, err)
	return token
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	require.NoError(t, err)
	return data
}
