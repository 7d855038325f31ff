package components

import (
	"context"

	"roombook/internal/pkg/config"
	"roombook/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewLogMailer,
		func(cfg config.Config) config.WorkerConfig { return cfg.Worker },
		worker.NewDispatcher,
	),
	fx.Invoke(startDispatcher),
)

func startDispatcher(lc fx.Lifecycle, dispatcher *worker.Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			dispatcher.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return dispatcher.Stop(ctx)
		},
	})
}
