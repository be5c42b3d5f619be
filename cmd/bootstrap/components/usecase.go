package components

import (
	"gin-order-service/internal/domain/order"
	"gin-order-service/internal/domain/timeslot"
	"gin-order-service/internal/pkg/clock"
	"gin-order-service/internal/pkg/config"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/usecase"
	"gin-order-service/internal/usecase/commands"
	"gin-order-service/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewCalculator,
		fx.As(new(order.Calculator)),
	),
	NewTimeslotDefaults,
	NewOrderOptions,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewTimeslotCommands,
		commands.NewOrderCommands,
		commands.NewPaymentEventCommands,
		commands.NewPaymentMethodCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewTimeslotQueries,
		queries.NewOrderQueries,
		queries.NewPaymentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewCalculator builds the fee table and tax rate from PRICING_* settings.
func NewCalculator(cfg config.Config) (*order.DefaultCalculator, error) {
	fees := order.FeeTable{}
	for option, raw := range map[order.DeliveryOption]string{
		order.DeliveryStandard: cfg.Pricing.StandardFee,
		order.DeliveryExpress:  cfg.Pricing.ExpressFee,
		order.DeliverySameday:  cfg.Pricing.SamedayFee,
	} {
		fee, err := decimal.NewFromString(raw)
		if err != nil || fee.IsNegative() {
			return nil, errs.Newf("invalid delivery fee %q for %s", raw, option)
		}
		fees[option] = fee
	}

	taxRate, err := decimal.NewFromString(cfg.Pricing.TaxRate)
	if err != nil || taxRate.IsNegative() {
		return nil, errs.Newf("invalid PRICING_TAX_RATE %q", cfg.Pricing.TaxRate)
	}

	return order.NewDefaultCalculator(fees, taxRate), nil
}

func NewTimeslotDefaults(cfg config.Config) timeslot.Capacity {
	return timeslot.Capacity{
		MaxOrders:      cfg.Timeslot.DefaultMaxOrders,
		BufferCapacity: cfg.Timeslot.DefaultBufferCapacity,
		CutoffHours:    cfg.Timeslot.DefaultCutoffHours,
	}
}

func NewOrderOptions(cfg config.Config) commands.OrderOptions {
	return commands.OrderOptions{
		Currency:         cfg.Pricing.Currency,
		AuthorizeTimeout: cfg.Payment.AuthorizeTimeout,
		VoidTimeout:      cfg.Payment.VoidTimeout,
	}
}
