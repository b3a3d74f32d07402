package bootstrap

import (
	"log/slog"

	"sarmiento-f5/cmd/bootstrap/components"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
		return &fxevent.SlogLogger{Logger: logger}
	}),
)
