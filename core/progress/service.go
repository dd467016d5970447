package progress

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/user"
)

var ErrNotFound = errors.New("progress record not found")

type (
	Repository interface {
		// UpsertQuizScore sets the user's quiz score, overwriting any previous one.
		UpsertQuizScore(username string, score int) error
		GetRecord(username string) (Record, error)
	}

	// UserCounter and CourseCounter expose the live Directory counts the
	// summaries are derived from.
	UserCounter interface {
		Count() (int, error)
	}
	CourseCounter interface {
		Count() (int, error)
		CountByInstructor(username string) (int, error)
	}

	Service struct {
		repo    Repository
		users   UserCounter
		courses CourseCounter
	}
)

func NewService(repo Repository, users UserCounter, courses CourseCounter) *Service {
	return &Service{
		repo:    repo,
		users:   users,
		courses: courses,
	}
}

// RecordQuizScore upserts the user's quiz score; the last submission wins.
func (svc *Service) RecordQuizScore(username string, score int) error {
	return svc.repo.UpsertQuizScore(username, score)
}

// Summarize derives the session's progress view from current state. The
// switch is exhaustive over the Role enum; sessions only exist for registered
// users, so anything else is a programming error.
func (svc *Service) Summarize(sess auth.Session) (Summary, error) {
	if sess.IsAnonymous() {
		return Summary{}, nil
	}

	switch sess.Role {
	case user.RoleInstructor:
		count, err := svc.courses.CountByInstructor(sess.Username)
		if err != nil {
			return Summary{}, pkgerrors.Wrap(err, "counting instructor courses")
		}
		return Summary{Role: user.RoleInstructor, CourseCount: &count}, nil

	case user.RoleStudent:
		rec, err := svc.repo.GetRecord(sess.Username)
		if err != nil {
			if err == ErrNotFound {
				// quiz never taken: score stays nil
				return Summary{Role: user.RoleStudent}, nil
			}
			return Summary{}, pkgerrors.Wrap(err, "getting progress record")
		}
		return Summary{Role: user.RoleStudent, QuizScore: rec.QuizScore}, nil

	case user.RoleAdmin:
		totalUsers, err := svc.users.Count()
		if err != nil {
			return Summary{}, pkgerrors.Wrap(err, "counting users")
		}
		totalCourses, err := svc.courses.Count()
		if err != nil {
			return Summary{}, pkgerrors.Wrap(err, "counting courses")
		}
		return Summary{Role: user.RoleAdmin, TotalUsers: &totalUsers, TotalCourses: &totalCourses}, nil

	default:
		return Summary{}, pkgerrors.Errorf("unknown role %q", sess.Role)
	}
}
