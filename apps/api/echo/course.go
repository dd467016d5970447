package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/course"
)

type courseApi struct {
	svc *course.Service
}

func registerCourseAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := courseApi{svc: deps.CourseSvc}

	cg := g.Group("/courses", jwt)
	cg.POST("", api.create)
	cg.GET("", api.list)
}

// Handlers

func (api *courseApi) create(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}

	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}

	// the service guards the role before looking at the input
	crs, err := api.svc.Create(sess, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, crs)
}

// list returns the caller's own courses, oldest first.
func (api *courseApi) list(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}

	courses, err := api.svc.ListByInstructor(sess.Username)
	if err != nil {
		return errors.Wrap(err, "listing courses")
	}

	out := make([]CourseResponse, 0, len(courses))
	for _, crs := range courses {
		out = append(out, CourseResponse{Course: crs, Preview: crs.Preview()})
	}
	return ctx.JSON(http.StatusOK, out)
}

// CourseResponse adds the content preview the UI renders in lists.
type CourseResponse struct {
	course.Course
	Preview string `json:"preview"`
}
