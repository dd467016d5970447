package quiz

import (
	"strconv"
	"strings"
)

// Engine holds a question bank and grades submissions against it.
// It carries no other state: same bank + same submission = same score, always.
type Engine struct {
	questions []Question
}

func NewEngine(questions []Question) *Engine {
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Engine{questions: qs}
}

// Questions returns the bank in canonical order.
func (e *Engine) Questions() []Question {
	qs := make([]Question, len(e.questions))
	copy(qs, e.questions)
	return qs
}

func (e *Engine) Len() int { return len(e.questions) }

// Score counts the questions whose submitted option index equals the answer
// key. A missing answer, or one that does not parse as an integer, never
// matches. The result is always within [0, Len()].
func (e *Engine) Score(sub Submission) int {
	var score int
	for i, q := range e.questions {
		raw, ok := sub[i]
		if !ok {
			continue
		}
		selected, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		if selected == q.Answer {
			score++
		}
	}
	return score
}
