package course

import (
	"errors"
	"time"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/user"
)

var (
	// errors
	ErrNotFound   = errors.New("course not found")
	ErrEmptyField = errors.New("title and content are required")
)

type (
	Repository interface {
		// CreateCourse assigns the next sequential ID and appends the course.
		CreateCourse(crs Course) (Course, error)
		// CoursesByInstructor returns the instructor's courses in creation order.
		CoursesByInstructor(username string) ([]Course, error)
		CountCourses() (int, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a course owned by the session user. Only instructors may create
// courses; the role is checked before anything else so a forbidden caller
// learns nothing about input validity.
func (svc *Service) Create(sess auth.Session, nc NewCourse) (Course, error) {
	if err := sess.Require(user.RoleInstructor); err != nil {
		return Course{}, err
	}

	nc.Clean()
	var flds []core.FieldError
	if nc.Title == "" {
		flds = append(flds, core.FieldError{Field: "title", Error: "this field is required"})
	}
	if nc.Content == "" {
		flds = append(flds, core.FieldError{Field: "content", Error: "this field is required"})
	}
	if len(flds) > 0 {
		return Course{}, core.NewValidationError(ErrEmptyField, flds...)
	}

	crs := Course{
		Title:      nc.Title,
		Content:    nc.Content,
		Instructor: sess.Username,
		CreatedAt:  time.Now().UTC(),
	}
	return svc.repo.CreateCourse(crs)
}

// ListByInstructor returns the courses owned by `username`, oldest first.
func (svc *Service) ListByInstructor(username string) ([]Course, error) {
	return svc.repo.CoursesByInstructor(core.CleanString(username))
}

// CountByInstructor counts the courses owned by `username`.
func (svc *Service) CountByInstructor(username string) (int, error) {
	courses, err := svc.repo.CoursesByInstructor(core.CleanString(username))
	if err != nil {
		return 0, err
	}
	return len(courses), nil
}

func (svc *Service) Count() (int, error) {
	return svc.repo.CountCourses()
}
