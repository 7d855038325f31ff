package components

import (
	"roombook/internal/pkg/clock"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/notify"
	"roombook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	notify.NewNotifier,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewRoomQueries,
		queries.NewUserQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewRoomCommands,
		commands.NewUserCommands,
		commands.NewNotificationCommands,
	),
)
