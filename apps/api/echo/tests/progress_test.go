package tests

import (
	"net/http"
	"testing"

	"github.com/trezcool/shule/core/user"
)

func Test_progressApi_summary(t *testing.T) {
	app := setup(t)
	teach := app.createUser(t, "teach", user.RoleInstructor)
	hero := app.createUser(t, "hero", user.RoleStudent)
	boss := app.createUser(t, "boss", user.RoleAdmin)

	t.Run("auth required", func(t *testing.T) {
		rec := app.do(httpTest{path: "/v1/progress"})
		app.checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)}, rec)
	})

	t.Run("student without score", func(t *testing.T) {
		rec := app.do(httpTest{path: "/v1/progress", token: app.getToken(t, hero)})
		app.checkCodeAndData(t, httpTest{wantData: []byte(`{"role":"student"}`)}, rec)
	})

	t.Run("student with score", func(t *testing.T) {
		rec := app.do(httpTest{
			method: http.MethodPost, path: "/v1/quiz", token: app.getToken(t, hero),
			body: []byte(`{"0":"3","1":"2"}`),
		})
		app.checkCodeAndData(t, httpTest{wantData: []byte(`{"score":1,"total":2}`)}, rec)

		rec = app.do(httpTest{path: "/v1/progress", token: app.getToken(t, hero)})
		app.checkCodeAndData(t, httpTest{wantData: []byte(`{"role":"student","quiz_score":1}`)}, rec)

		// a retake overwrites the recorded score
		rec = app.do(httpTest{
			method: http.MethodPost, path: "/v1/quiz", token: app.getToken(t, hero),
			body: []byte(`{"0":"3","1":"1"}`),
		})
		app.checkCodeAndData(t, httpTest{wantData: []byte(`{"score":2,"total":2}`)}, rec)

		rec = app.do(httpTest{path: "/v1/progress", token: app.getToken(t, hero)})
		app.checkCodeAndData(t, httpTest{wantData: []byte(`{"role":"student","quiz_score":2}`)}, rec)
	})

	t.Run("instructor", func(t *testing.T) {
		rec := app.do(httpTest{path: "/v1/progress", token: app.getToken(t, teach)})
		app.checkCodeAndData(t, httpTest{wantData: []byte(`{"role":"instructor","course_count":0}`)}, rec)

		app.createCourse(t, teach, "Go 101", "Everything about Go.")
		app.createCourse(t, teach, "Go 102", "More about Go.")

		rec = app.do(httpTest{path: "/v1/progress", token: app.getToken(t, teach)})
		app.checkCodeAndData(t, httpTest{wantData: []byte(`{"role":"instructor","course_count":2}`)}, rec)
	})

	t.Run("admin", func(t *testing.T) {
		rec := app.do(httpTest{path: "/v1/progress", token: app.getToken(t, boss)})
		app.checkCodeAndData(t, httpTest{wantData: []byte(`{"role":"admin","total_users":3,"total_courses":2}`)}, rec)
	})
}
