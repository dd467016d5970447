package auth

import "github.com/trezcool/shule/core/user"

// Section is a UI area the API layer may expose to a role.
type Section string

const (
	SectionCourseCreation   Section = "courseCreation"
	SectionAssessments      Section = "assessments"
	SectionProgressTracking Section = "progressTracking"
)

// roleSections is the whole policy: which sections each role gets to see.
// Viewing a section is not the same as acting in it; course creation and quiz
// submission are guarded separately by the owning services.
var roleSections = map[user.Role][]Section{
	user.RoleInstructor: {SectionCourseCreation, SectionProgressTracking},
	user.RoleStudent:    {SectionAssessments, SectionProgressTracking},
	user.RoleAdmin:      {SectionCourseCreation, SectionAssessments, SectionProgressTracking},
}

// VisibleSections returns the sections visible to `role`, in stable order.
// It is total over the Role enum; unknown roles see nothing.
func VisibleSections(role user.Role) []Section {
	sections, ok := roleSections[role]
	if !ok {
		return nil
	}
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// CanView reports whether `role` may see `section`.
func CanView(role user.Role, section Section) bool {
	for _, s := range roleSections[role] {
		if s == section {
			return true
		}
	}
	return false
}
