//go:build unit || e2e

package builder

import (
	"time"

	"gin-order-service/internal/domain/user"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/usecase/queries"
	"gin-order-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID                 uuid.UUID
	Email              string
	PasswordHash       string
	Role               string
	PaymentCustomerRef *string
	IsActive           bool
}

func NewUserBuilder() *UserBuilder {
	customerRef := "cus_test_123"
	return &UserBuilder{
		ID:                 uuid.New(),
		Email:              "test@example.com",
		PasswordHash:       "hashed_password",
		Role:               "customer",
		PaymentCustomerRef: &customerRef,
		IsActive:           true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, u.PaymentCustomerRef), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	var customerRef pgtype.Text
	if u.PaymentCustomerRef != nil {
		customerRef = pgtype.Text{String: *u.PaymentCustomerRef, Valid: true}
	}

	return sqlc.Users{
		ID:                 u.ID,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		Role:               u.Role,
		PaymentCustomerRef: customerRef,
		LastLogin:          pgtype.Timestamptz{},
		IsActive:           u.IsActive,
		CreatedAt:          pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:                 u.ID,
		Email:              u.Email,
		Role:               u.Role,
		PaymentCustomerRef: u.PaymentCustomerRef,
		IsActive:           u.IsActive,
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:                 u.ID,
		Email:              u.Email,
		Role:               u.Role,
		IsActive:           u.IsActive,
		PaymentCustomerRef: u.PaymentCustomerRef,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithoutPaymentCustomer() *UserBuilder {
	u.PaymentCustomerRef = nil
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
