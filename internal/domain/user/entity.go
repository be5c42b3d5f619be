package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the account placing orders. Registration happens outside this service.
type User struct {
	id                 uuid.UUID
	email              Email
	passwordHash       string
	role               Role
	paymentCustomerRef *string
	lastLogin          *time.Time
	isActive           bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewUser(email Email, passwordHash string, role Role, paymentCustomerRef *string) *User {
	return &User{
		id:                 uuid.New(),
		email:              email,
		passwordHash:       passwordHash,
		role:               role,
		paymentCustomerRef: paymentCustomerRef,
		isActive:           true,
	}
}

// CanPayByCard reports whether the user is linked to a customer at the payment provider.
func (u *User) CanPayByCard() bool {
	return u.paymentCustomerRef != nil && *u.paymentCustomerRef != ""
}

func (u *User) ID() uuid.UUID               { return u.id }
func (u *User) Email() Email                { return u.email }
func (u *User) PasswordHash() string        { return u.passwordHash }
func (u *User) Role() Role                  { return u.role }
func (u *User) PaymentCustomerRef() *string { return u.paymentCustomerRef }
func (u *User) LastLogin() *time.Time       { return u.lastLogin }
func (u *User) IsActive() bool              { return u.isActive }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() time.Time        { return u.updatedAt }
