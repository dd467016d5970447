package user_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/user"
	inmemdb "github.com/trezcool/shule/storage/inmem"
)

// mailRecorder records messages synchronously so tests can assert right away.
type mailRecorder struct {
	mu   sync.Mutex
	sent []*core.EmailMessage
}

func (r *mailRecorder) SendMessages(messages ...*core.EmailMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, messages...)
}

func setup(t *testing.T) (*user.Service, *mailRecorder) {
	t.Helper()
	db, err := inmemdb.Open()
	require.NoError(t, err)

	mailSvc := new(mailRecorder)
	return user.NewService(inmemdb.NewUserRepository(db), mailSvc, core.NewConfig()), mailSvc
}

func TestService_Register(t *testing.T) {
	svc, mailSvc := setup(t)

	usr, err := svc.Register(user.NewUser{Username: "awe", Password: "s3cret", Role: user.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, "awe", usr.Username)
	assert.Equal(t, user.RoleStudent, usr.Role)
	assert.False(t, usr.CreatedAt.IsZero())
	assert.Empty(t, mailSvc.sent) // no email address, no welcome mail

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_Register_duplicateUsername(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Register(user.NewUser{Username: "awe", Password: "s3cret", Role: user.RoleStudent})
	require.NoError(t, err)

	// same username, different everything else
	_, err = svc.Register(user.NewUser{Username: "awe", Password: "other", Role: user.RoleInstructor})
	require.Error(t, err)
	vErr, ok := err.(*core.ValidationError)
	require.True(t, ok)
	assert.Equal(t, user.ErrUsernameExists, vErr.Err)
	assert.Equal(t, []core.FieldError{{Field: "username", Error: user.ErrUsernameExists.Error()}}, vErr.Fields)

	// the failed attempt left the Directory untouched
	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_Register_usernamesAreCaseSensitive(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Register(user.NewUser{Username: "Awe", Password: "s3cret", Role: user.RoleStudent})
	require.NoError(t, err)
	_, err = svc.Register(user.NewUser{Username: "awe", Password: "s3cret", Role: user.RoleStudent})
	require.NoError(t, err) // different user

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestService_Register_invalidRole(t *testing.T) {
	svc, _ := setup(t)

	for _, role := range []user.Role{"", "superuser", "Student"} {
		_, err := svc.Register(user.NewUser{Username: "awe", Password: "s3cret", Role: role})
		assert.Equal(t, user.ErrInvalidRole, err)
	}

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestService_Register_sendsWelcomeEmail(t *testing.T) {
	svc, mailSvc := setup(t)

	_, err := svc.Register(user.NewUser{Username: "awe", Password: "s3cret", Role: user.RoleStudent, Email: "awe@test.cd"})
	require.NoError(t, err)

	require.Len(t, mailSvc.sent, 1)
	msg := mailSvc.sent[0]
	assert.Equal(t, "awe@test.cd", msg.To[0].Address)
	assert.Contains(t, msg.Body, "awe")
}

func TestService_Authenticate(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Register(user.NewUser{Username: "awe", Password: "s3cret", Role: user.RoleStudent})
	require.NoError(t, err)

	usr, err := svc.Authenticate("awe", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "awe", usr.Username)

	tests := []struct {
		name       string
		uname, pwd string
	}{
		{name: "wrong password", uname: "awe", pwd: "nope"},
		{name: "unknown username", uname: "who", pwd: "s3cret"},
		{name: "password case mismatch", uname: "awe", pwd: "S3cret"},
		{name: "username case mismatch", uname: "Awe", pwd: "s3cret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(tt.uname, tt.pwd)
			assert.Equal(t, user.ErrInvalidCredentials, err)
		})
	}
}
