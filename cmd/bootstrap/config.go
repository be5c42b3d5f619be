package bootstrap

import (
	"log/slog"

	"gin-order-service/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// logEffectiveConfig records which optional integrations are live. Secrets are never logged.
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"payment_provider", cfg.Payment.Provider,
		"currency", cfg.Pricing.Currency,
		"redis_addr", cfg.Redis.Addr,
		"kafka_enabled", cfg.Kafka.Enabled(),
		"payment_events_topic", cfg.Kafka.PaymentEventsTopic,
	)
}
