package user

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/trezcool/shule/core"
)

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrUsernameExists     = errors.New("a user with this username already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type (
	Repository interface {
		CheckUsernameUniqueness(username string) error
		CreateUser(usr User) (User, error)
		GetUserByUsername(username string) (User, error)
		// GetUserByCredentials does an exact, case-sensitive match on both
		// username and password.
		GetUserByCredentials(username, password string) (User, error)
		CountUsers() (int, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{
		repo:    repo,
		mailSvc: mailSvc,
		conf:    conf,
	}
}

func (svc *Service) checkUniqueness(uname string) error {
	if err := svc.repo.CheckUsernameUniqueness(uname); err != nil {
		if err == ErrUsernameExists {
			return core.NewValidationError(err, core.FieldError{Field: "username", Error: err.Error()})
		}
		return err
	}
	return nil
}

// Register creates a new User. The Directory is left untouched on any failure.
func (svc *Service) Register(nu NewUser) (User, error) {
	if !nu.Role.IsValid() {
		return User{}, ErrInvalidRole
	}
	if err := svc.checkUniqueness(nu.Username); err != nil {
		return User{}, err
	}

	usr := User{
		Username:  nu.Username,
		Email:     nu.Email,
		Password:  nu.Password,
		Role:      nu.Role,
		CreatedAt: time.Now().UTC(),
	}
	usr, err := svc.repo.CreateUser(usr)
	if err != nil {
		return User{}, err
	}

	svc.sendWelcomeEmail(usr)
	return usr, nil
}

// Authenticate logs a user in; any mismatch (unknown username, wrong password)
// comes back as ErrInvalidCredentials.
func (svc *Service) Authenticate(uname, pwd string) (User, error) {
	usr, err := svc.repo.GetUserByCredentials(core.CleanString(uname), core.CleanString(pwd))
	if err != nil {
		if err == ErrNotFound {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	return usr, nil
}

func (svc *Service) GetByUsername(uname string) (User, error) {
	return svc.repo.GetUserByUsername(core.CleanString(uname))
}

func (svc *Service) Count() (int, error) {
	return svc.repo.CountUsers()
}

func (svc *Service) sendWelcomeEmail(usr User) {
	if usr.Email == "" {
		return
	}
	msg := &core.EmailMessage{
		To:      []mail.Address{{Name: usr.Username, Address: usr.Email}},
		Subject: "Welcome to " + svc.conf.AppName,
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour %s account has been created. You can now log in at %s.\n",
			usr.Username, usr.Role, svc.conf.FrontendBaseURL,
		),
	}
	svc.mailSvc.SendMessages(msg)
}
