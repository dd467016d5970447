package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/user"
)

type recorderStub struct {
	scores map[string]int
}

func (r *recorderStub) RecordQuizScore(username string, score int) error {
	if r.scores == nil {
		r.scores = make(map[string]int)
	}
	r.scores[username] = score
	return nil
}

func TestService_Submit(t *testing.T) {
	recorder := new(recorderStub)
	svc := NewService(NewEngine(DefaultBank()), recorder)
	student := auth.Session{Username: "hero", Role: user.RoleStudent}

	score, err := svc.Submit(student, Submission{0: "3", 1: "1"})
	require.NoError(t, err)
	assert.Equal(t, 2, score)
	assert.Equal(t, 2, recorder.scores["hero"])

	// a new submission overwrites, never accumulates
	score, err = svc.Submit(student, Submission{0: "3"})
	require.NoError(t, err)
	assert.Equal(t, 1, score)
	assert.Equal(t, 1, recorder.scores["hero"])
}

func TestService_Submit_studentsOnly(t *testing.T) {
	tests := []struct {
		name string
		sess auth.Session
	}{
		{name: "instructor", sess: auth.Session{Username: "teach", Role: user.RoleInstructor}},
		{name: "admin", sess: auth.Session{Username: "boss", Role: user.RoleAdmin}},
		{name: "anonymous", sess: auth.Session{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := new(recorderStub)
			svc := NewService(NewEngine(DefaultBank()), recorder)

			_, err := svc.Submit(tt.sess, Submission{0: "3", 1: "1"})
			assert.Equal(t, auth.ErrForbidden, err)
			assert.Empty(t, recorder.scores) // nothing recorded
		})
	}
}
