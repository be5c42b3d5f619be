//go:build unit

package readstore

import (
	"context"
	"testing"

	"gin-order-service/internal/infra"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartReadQueries struct {
	mock.Mock
}

func (m *MockCartReadQueries) GetActiveCartLines(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.GetActiveCartLinesRow, error) {
	args := m.Called(ctx, db, userID)
	rows, _ := args.Get(0).([]sqlc.GetActiveCartLinesRow)
	return rows, args.Error(1)
}

func TestActiveCart(t *testing.T) {
	userID := uuid.New()
	cartID := uuid.New()

	t.Run("success: prices lines with current product price", func(t *testing.T) {
		apple, milk := uuid.New(), uuid.New()
		rows := []sqlc.GetActiveCartLinesRow{
			{CartID: cartID, ProductID: apple, Name: "Apple", ImageUrl: "apple.png", Price: pgconv.DecimalToNumeric(decimal.RequireFromString("10.00")), Quantity: 2, IsActive: true},
			{CartID: cartID, ProductID: milk, Name: "Milk", ImageUrl: "milk.png", Price: pgconv.DecimalToNumeric(decimal.RequireFromString("5.00")), Quantity: 1, IsActive: false},
		}
		mockQueries := new(MockCartReadQueries)
		mockQueries.On("GetActiveCartLines", mock.Anything, mock.Anything, userID).Return(rows, nil)

		snap, err := NewCartReadStore(mockQueries).ActiveCart(context.Background(), nil, userID)

		require.NoError(t, err)
		require.NotNil(t, snap)
		assert.Equal(t, cartID, snap.CartID)
		assert.Equal(t, userID, snap.UserID)
		require.Len(t, snap.Lines, 2)
		assert.True(t, snap.Lines[0].UnitPrice.Equal(decimal.RequireFromString("10")))
		assert.Equal(t, 2, snap.Lines[0].Quantity)
		assert.False(t, snap.Lines[1].Available)
	})

	t.Run("success: no active cart yields nil snapshot", func(t *testing.T) {
		mockQueries := new(MockCartReadQueries)
		mockQueries.On("GetActiveCartLines", mock.Anything, mock.Anything, userID).Return(nil, nil)

		snap, err := NewCartReadStore(mockQueries).ActiveCart(context.Background(), nil, userID)

		assert.NoError(t, err)
		assert.True(t, snap.IsEmpty())
	})

	t.Run("error: database failure", func(t *testing.T) {
		mockQueries := new(MockCartReadQueries)
		mockQueries.On("GetActiveCartLines", mock.Anything, mock.Anything, userID).Return(nil, assert.AnError)

		_, err := NewCartReadStore(mockQueries).ActiveCart(context.Background(), nil, userID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
