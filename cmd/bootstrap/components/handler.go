package components

import (
	"seatslabs/internal/handler"
	"seatslabs/internal/handler/api"
	"seatslabs/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewSlotHandler,
		api.NewServiceHandler,
		api.NewVehicleHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
