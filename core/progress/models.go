package progress

import "github.com/trezcool/shule/core/user"

// Record tracks a user's quiz progress. It is created lazily on the first
// submission; QuizScore always holds the latest score only.
type Record struct {
	Username  string `json:"username"`
	QuizScore *int   `json:"quiz_score"` // nil until the first submission
}

// Summary is the role-specific progress view, tagged by Role. Only the fields
// of the matching shape are set:
//   - instructor: CourseCount
//   - student:    QuizScore (nil means the quiz was never taken)
//   - admin:      TotalUsers + TotalCourses
//
// An anonymous session yields the zero Summary.
type Summary struct {
	Role         user.Role `json:"role,omitempty"`
	CourseCount  *int      `json:"course_count,omitempty"`
	QuizScore    *int      `json:"quiz_score,omitempty"`
	TotalUsers   *int      `json:"total_users,omitempty"`
	TotalCourses *int      `json:"total_courses,omitempty"`
}
