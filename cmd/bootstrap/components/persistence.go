package components

import (
	"gin-order-service/internal/infra/readstore"
	sqlc "gin-order-service/internal/infra/sqlc/generated"
	"gin-order-service/internal/infra/uow"
	"gin-order-service/internal/pkg/config"
	"gin-order-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Repositories are not provided here: each one is bound to a transaction and handed out by shared.Tx.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Timeslot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TimeslotReadQueries)),
		),
		fx.Annotate(
			readstore.NewTimeslotReadStore,
			fx.As(new(queries.TimeslotReadStore)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Payment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentReadQueries)),
		),
		fx.Annotate(
			NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		// PaymentMethod
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentMethodReadQueries)),
		),
		fx.Annotate(
			readstore.NewPaymentMethodReadStore,
			fx.As(new(queries.PaymentMethodReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewPaymentReadStore(q readstore.PaymentReadQueries, cfg config.Config) *readstore.PaymentReadStore {
	return readstore.NewPaymentReadStore(q, cfg.Pricing.Currency)
}
