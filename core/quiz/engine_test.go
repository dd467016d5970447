package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngine_Score(t *testing.T) {
	engine := NewEngine(DefaultBank())

	tests := []struct {
		name string
		sub  Submission
		want int
	}{
		{name: "all correct", sub: Submission{0: "3", 1: "1"}, want: 2},
		{name: "all wrong", sub: Submission{0: "0", 1: "0"}, want: 0},
		{name: "empty submission", sub: Submission{}, want: 0},
		{name: "nil submission", sub: nil, want: 0},
		{name: "partial", sub: Submission{1: "1"}, want: 1},
		{name: "whitespace tolerated", sub: Submission{0: " 3 ", 1: "1"}, want: 2},
		{name: "non-parseable never matches", sub: Submission{0: "three", 1: "1"}, want: 1},
		{name: "empty value never matches", sub: Submission{0: "", 1: "1"}, want: 1},
		{name: "unknown question index ignored", sub: Submission{0: "3", 7: "1"}, want: 1},
		{name: "negative index ignored", sub: Submission{-1: "3", 0: "3"}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Score(tt.sub))
		})
	}
}

func TestEngine_Score_isPure(t *testing.T) {
	engine := NewEngine(DefaultBank())
	sub := Submission{0: "3", 1: "0"}

	first := engine.Score(sub)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, engine.Score(sub))
	}
}

// The answer key is index-based: matching compares option positions, never
// option text. Reordering options without updating Answer changes grading.
func TestEngine_Score_matchesByIndexNotText(t *testing.T) {
	engine := NewEngine([]Question{
		{Text: "pick the second", Options: []string{"b", "a"}, Answer: 1},
	})

	assert.Equal(t, 1, engine.Score(Submission{0: "1"})) // index of "a"
	assert.Equal(t, 0, engine.Score(Submission{0: "0"})) // "b" sits on the key's old spot

	reordered := NewEngine([]Question{
		{Text: "pick the second", Options: []string{"a", "b"}, Answer: 1},
	})
	assert.Equal(t, 1, reordered.Score(Submission{0: "1"})) // now grades "b" as correct
}

func TestEngine_Questions_answerNeverSerialized(t *testing.T) {
	engine := NewEngine(DefaultBank())

	for _, q := range engine.Questions() {
		assert.NotEmpty(t, q.Text)
		assert.True(t, q.Answer >= 0 && q.Answer < len(q.Options))
	}
	assert.Equal(t, 2, engine.Len())
}
