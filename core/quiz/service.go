package quiz

import (
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/user"
)

type (
	// ScoreRecorder persists the latest quiz score of a user.
	ScoreRecorder interface {
		RecordQuizScore(username string, score int) error
	}

	Service struct {
		engine   *Engine
		recorder ScoreRecorder
	}
)

func NewService(engine *Engine, recorder ScoreRecorder) *Service {
	return &Service{
		engine:   engine,
		recorder: recorder,
	}
}

func (svc *Service) Questions() []Question { return svc.engine.Questions() }

func (svc *Service) Len() int { return svc.engine.Len() }

// Submit grades the submission for the session user and records the score.
// Only students may submit; each submission overwrites the previous score.
func (svc *Service) Submit(sess auth.Session, sub Submission) (int, error) {
	if err := sess.Require(user.RoleStudent); err != nil {
		return 0, err
	}

	score := svc.engine.Score(sub)
	if err := svc.recorder.RecordQuizScore(sess.Username, score); err != nil {
		return 0, errors.Wrap(err, "recording quiz score")
	}
	return score, nil
}
