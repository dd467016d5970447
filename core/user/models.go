package user

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

// Role is the single role a User is given at registration.
type Role string

const (
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
)

var Roles = []Role{RoleInstructor, RoleStudent, RoleAdmin}

func (r Role) IsValid() bool {
	switch r {
	case RoleInstructor, RoleStudent, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// User is a registered account. Users are immutable once created and are
// never deleted; the username is the identity (unique, case-sensitive).
type User struct {
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Password  string    `json:"-"` // stored as given; see FindByCredentials
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

func (u User) IsInstructor() bool { return u.Role == RoleInstructor }
func (u User) IsStudent() bool    { return u.Role == RoleStudent }
func (u User) IsAdmin() bool      { return u.Role == RoleAdmin }

// NewUser contains information needed to register a new User.
type NewUser struct {
	Username string `json:"username" validate:"required,alphanum_"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required,role"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func (nu *NewUser) Clean() {
	// usernames are case-sensitive: trim only, never lower
	nu.Username = core.CleanString(nu.Username)
	nu.Password = core.CleanString(nu.Password)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	nu.Clean()
	return validate.Struct(nu)
}
