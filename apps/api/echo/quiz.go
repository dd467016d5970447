package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/quiz"
)

type quizApi struct {
	svc *quiz.Service
}

func registerQuizAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := quizApi{svc: deps.QuizSvc}

	qg := g.Group("/quiz", jwt)
	qg.GET("", api.questions)
	qg.POST("", api.submit)
}

// Handlers

// questions returns the bank in canonical order, answer keys stripped.
// Viewing is gated on the assessments section (students and admins).
func (api *quizApi) questions(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	if !auth.CanView(sess.Role, auth.SectionAssessments) {
		return errHttpForbidden
	}
	return ctx.JSON(http.StatusOK, api.svc.Questions())
}

func (api *quizApi) submit(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}

	var data map[string]string
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding submission")
	}

	// form inputs are keyed by question number; anything else is ignored
	sub := make(quiz.Submission, len(data))
	for key, val := range data {
		if i, err := strconv.Atoi(key); err == nil {
			sub[i] = val
		}
	}

	score, err := api.svc.Submit(sess, sub)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, QuizResultResponse{Score: score, Total: api.svc.Len()})
}

type QuizResultResponse struct {
	Score int `json:"score"`
	Total int `json:"total"`
}
