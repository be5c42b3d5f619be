//go:build unit

package readstore

import (
	"context"
	"testing"

	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentReadQueries struct {
	mock.Mock
}

func (m *MockPaymentReadQueries) GetOrder(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Orders), args.Error(1)
}

func (m *MockPaymentReadQueries) GetPaymentByOrder(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (sqlc.Payments, error) {
	args := m.Called(ctx, db, orderID)
	return args.Get(0).(sqlc.Payments), args.Error(1)
}

func TestStatusByOrder(t *testing.T) {
	orderID := uuid.New()
	orderRow := sqlc.Orders{
		ID:              orderID,
		UserID:          uuid.New(),
		Status:          "pending",
		PaymentMethod:   "card",
		PaymentStatus:   "authorized",
		Total:           pgconv.DecimalToNumeric(decimal.RequireFromString("69.50")),
		PaymentIntentID: pgconv.StringToPgtype("pi_123"),
	}

	t.Run("success: card order merges provider row", func(t *testing.T) {
		mockQueries := new(MockPaymentReadQueries)
		mockQueries.On("GetOrder", mock.Anything, mock.Anything, orderID).Return(orderRow, nil)
		mockQueries.On("GetPaymentByOrder", mock.Anything, mock.Anything, orderID).
			Return(sqlc.Payments{Status: "pending", Currency: "usd"}, nil)

		view, err := NewPaymentReadStore(mockQueries, "cad").StatusByOrder(context.Background(), nil, orderID)

		require.NoError(t, err)
		assert.Equal(t, "authorized", view.PaymentStatus)
		require.NotNil(t, view.ProviderStatus)
		assert.Equal(t, "pending", *view.ProviderStatus)
		assert.Equal(t, "usd", view.Currency)
		assert.Equal(t, "pi_123", *view.PaymentIntentID)
	})

	t.Run("success: cash order has no provider row", func(t *testing.T) {
		mockQueries := new(MockPaymentReadQueries)
		mockQueries.On("GetOrder", mock.Anything, mock.Anything, orderID).Return(orderRow, nil)
		mockQueries.On("GetPaymentByOrder", mock.Anything, mock.Anything, orderID).Return(sqlc.Payments{}, pgx.ErrNoRows)

		view, err := NewPaymentReadStore(mockQueries, "cad").StatusByOrder(context.Background(), nil, orderID)

		require.NoError(t, err)
		assert.Nil(t, view.ProviderStatus)
		assert.Equal(t, "cad", view.Currency)
		assert.True(t, view.Amount.Equal(decimal.RequireFromString("69.5")))
	})
}
