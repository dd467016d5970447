package course

import (
	"time"

	"github.com/trezcool/shule/core"
)

const previewLen = 30

// Course is created by an instructor and never mutated nor deleted.
// Instructor holds the owner's username; it is a back-reference, deleting or
// renaming semantics do not exist in this system.
type Course struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Instructor string    `json:"instructor"`
	CreatedAt  time.Time `json:"created_at"` // UTC
}

// Preview returns the first 30 runes of the content, for list rendering.
func (c Course) Preview() string {
	runes := []rune(c.Content)
	if len(runes) <= previewLen {
		return c.Content
	}
	return string(runes[:previewLen]) + "..."
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (nc *NewCourse) Clean() {
	nc.Title = core.CleanString(nc.Title)
	nc.Content = core.CleanString(nc.Content)
}
