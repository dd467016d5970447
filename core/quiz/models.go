package quiz

// Question is one entry of the static question bank. The bank's order is the
// canonical question numbering: submissions and the answer key are both
// addressed by question index, and the correct answer is an option index, so
// reordering options without updating Answer silently breaks grading.
type Question struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Answer  int      `json:"-"` // correct option index; never serialized
}

// Submission maps a question index to the selected option index, as collected
// by the UI (raw strings). Unanswered questions are simply absent.
type Submission map[int]string

// DefaultBank is the process-wide question bank, fixed at startup.
func DefaultBank() []Question {
	return []Question{
		{
			Text:    "What is 2 + 2?",
			Options: []string{"1", "2", "3", "4"},
			Answer:  3,
		},
		{
			Text:    "What is the capital of France?",
			Options: []string{"Berlin", "Paris", "Rome", "Madrid"},
			Answer:  1,
		},
	}
}
