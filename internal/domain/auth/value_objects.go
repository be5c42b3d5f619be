package auth

import (
	"gin-order-service/internal/domain/user"
	"gin-order-service/internal/pkg/errs"
)

var ErrInvalidCredentials = errs.New("invalid email or password")

// Credentials is a normalized login attempt. The email is lower-cased so lookups
// match however the customer typed it.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, errs.Mark(err, ErrInvalidCredentials)
	}
	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, errs.Mark(err, ErrInvalidCredentials)
	}
	return Credentials{email: email, password: password}, nil
}

func (c Credentials) Email() user.Email       { return c.email }
func (c Credentials) Password() user.Password { return c.password }
