package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/shule/core/user"
)

func TestVisibleSections(t *testing.T) {
	tests := []struct {
		name string
		role user.Role
		want []Section
	}{
		{
			name: "instructor",
			role: user.RoleInstructor,
			want: []Section{SectionCourseCreation, SectionProgressTracking},
		},
		{
			name: "student",
			role: user.RoleStudent,
			want: []Section{SectionAssessments, SectionProgressTracking},
		},
		{
			name: "admin",
			role: user.RoleAdmin,
			want: []Section{SectionCourseCreation, SectionAssessments, SectionProgressTracking},
		},
		{name: "unknown role sees nothing", role: user.Role("janitor"), want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibleSections(tt.role))
		})
	}

	// covers the whole enum
	for _, role := range user.Roles {
		assert.NotEmpty(t, VisibleSections(role))
	}
}

func TestCanView(t *testing.T) {
	assert.True(t, CanView(user.RoleStudent, SectionAssessments))
	assert.False(t, CanView(user.RoleStudent, SectionCourseCreation))
	assert.True(t, CanView(user.RoleInstructor, SectionCourseCreation))
	assert.False(t, CanView(user.RoleInstructor, SectionAssessments))
	assert.True(t, CanView(user.RoleAdmin, SectionAssessments))
}

func TestSession_Require(t *testing.T) {
	sess := Session{Username: "teach", Role: user.RoleInstructor}
	assert.NoError(t, sess.Require(user.RoleInstructor))
	assert.Equal(t, ErrForbidden, sess.Require(user.RoleStudent))

	var anon Session
	assert.True(t, anon.IsAnonymous())
	assert.Equal(t, ErrForbidden, anon.Require(user.RoleStudent))
}
