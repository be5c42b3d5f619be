package bootstrap

import (
	"log/slog"

	"gin-order-service/internal/domain/payment"
	"gin-order-service/internal/infra/paymentgw"
	"gin-order-service/internal/pkg/config"
	"gin-order-service/internal/pkg/errs"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config) (payment.Gateway, error) {
	switch cfg.Payment.Provider {
	case "fake":
		slog.Warn("using in-memory payment gateway")
		return paymentgw.NewFakeGateway(), nil
	case "stripe":
		if cfg.Payment.SecretKey == "" || cfg.Payment.WebhookSecret == "" {
			return nil, errs.New("PAYMENT_SECRET_KEY and PAYMENT_WEBHOOK_SECRET are required for the stripe provider")
		}
		return paymentgw.NewStripeGateway(cfg.Payment.SecretKey, cfg.Payment.WebhookSecret), nil
	default:
		return nil, errs.Newf("unknown PAYMENT_PROVIDER %q", cfg.Payment.Provider)
	}
}
