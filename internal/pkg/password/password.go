// Package password hashes login passwords with bcrypt.
package password

import (
	"gin-order-service/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword = errs.New("empty password")
	ErrMismatch      = errs.New("password does not match")
)

// Cost is bcrypt.DefaultCost; fixtures hash with the same cost the service verifies against.
const Cost = bcrypt.DefaultCost

func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Wrap(err, "bcrypt hash")
	}
	return string(hashed), nil
}

// ComparePassword returns ErrMismatch for a wrong password and a wrapped error
// for a corrupt hash.
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrEmptyPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "bcrypt compare")
	}
}
