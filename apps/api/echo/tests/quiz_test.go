package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/shule/core/user"
)

func Test_quizApi_questions(t *testing.T) {
	app := setup(t)
	teach := app.createUser(t, "teach", user.RoleInstructor)
	hero := app.createUser(t, "hero", user.RoleStudent)
	boss := app.createUser(t, "boss", user.RoleAdmin)

	wantBank := []byte(`[
		{"question":"What is 2 + 2?","options":["1","2","3","4"]},
		{"question":"What is the capital of France?","options":["Berlin","Paris","Rome","Madrid"]}
	]`)

	tests := []httpTest{
		{
			name: "auth required", wantCode: http.StatusUnauthorized,
			wantData: marshallObj(t, errMissingToken),
		},
		{
			name: "instructor forbidden", token: app.getToken(t, teach),
			wantCode: http.StatusForbidden, wantData: marshallObj(t, httpErr{Error: "permission denied"}),
		},
		{name: "student", token: app.getToken(t, hero), wantData: wantBank},
		{name: "admin", token: app.getToken(t, boss), wantData: wantBank},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.path = "/v1/quiz"
			rec := app.do(tt)
			app.checkCodeAndData(t, tt, rec)

			// the answer key must never leak
			assert.NotContains(t, rec.Body.String(), "answer")
		})
	}
}

func Test_quizApi_submit(t *testing.T) {
	app := setup(t)
	teach := app.createUser(t, "teach", user.RoleInstructor)
	hero := app.createUser(t, "hero", user.RoleStudent)
	boss := app.createUser(t, "boss", user.RoleAdmin)

	tests := []httpTest{
		{
			name: "auth required", body: []byte(`{"0":"3","1":"1"}`),
			wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken),
		},
		{
			name: "instructor forbidden", token: app.getToken(t, teach), body: []byte(`{"0":"3","1":"1"}`),
			wantCode: http.StatusForbidden, wantData: marshallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			// admins may view the quiz but only students are graded
			name: "admin forbidden", token: app.getToken(t, boss), body: []byte(`{"0":"3","1":"1"}`),
			wantCode: http.StatusForbidden, wantData: marshallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name: "all correct", token: app.getToken(t, hero), body: []byte(`{"0":"3","1":"1"}`),
			wantData: []byte(`{"score":2,"total":2}`),
		},
		{
			name: "all wrong", token: app.getToken(t, hero), body: []byte(`{"0":"0","1":"0"}`),
			wantData: []byte(`{"score":0,"total":2}`),
		},
		{
			name: "partial", token: app.getToken(t, hero), body: []byte(`{"0":"3","1":"2"}`),
			wantData: []byte(`{"score":1,"total":2}`),
		},
		{
			name: "empty submission", token: app.getToken(t, hero), body: []byte(`{}`),
			wantData: []byte(`{"score":0,"total":2}`),
		},
		{
			// junk answers and stray keys never match
			name: "junk submission", token: app.getToken(t, hero), body: []byte(`{"0":"yes","1":"","bogus":"1"}`),
			wantData: []byte(`{"score":0,"total":2}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.method = http.MethodPost
			tt.path = "/v1/quiz"
			rec := app.do(tt)
			app.checkCodeAndData(t, tt, rec)
		})
	}
}
