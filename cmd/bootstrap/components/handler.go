package components

import (
	"gin-order-service/internal/handler"
	"gin-order-service/internal/handler/api"
	"gin-order-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewTimeslotHandler,
		api.NewOrderHandler,
		api.NewPaymentHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
