package components

import (
	"roombook/internal/handler"
	"roombook/internal/handler/api"
	"roombook/internal/handler/middleware"
	"roombook/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewNotificationHandler,
		api.NewUserHandler,
		func(
			auth *api.AuthHandler,
			booking *api.BookingHandler,
			room *api.RoomHandler,
			notification *api.NotificationHandler,
			user *api.UserHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:         auth,
				Booking:      booking,
				Room:         room,
				Notification: notification,
				User:         user,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
