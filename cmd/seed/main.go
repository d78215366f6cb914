// Command seed migrates the schema and loads the sample catalog, then
// exits. Useful for preparing a database outside the server lifecycle.
package main

import (
	"context"
	"log"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"campus-rewards/pkg/config"
	"campus-rewards/pkg/db"
	"campus-rewards/pkg/logger"
	"campus-rewards/services/bootstrap"
)

func main() {
	opts := []fx.Option{
		config.Module,
		logger.Module,
		db.Module,
		fx.Provide(bootstrap.NewService),
		fx.Invoke(run),
		fx.WithLogger(func(cfg *config.Config, logger *zap.Logger) fxevent.Logger {
			return fxevent.NopLogger
		}),
	}

	if err := fx.ValidateApp(opts...); err != nil {
		log.Fatalf("fx validation failed: %v", err)
	}

	app := fx.New(opts...)

	app.Run()
}

func run(lc fx.Lifecycle, b *bootstrap.Service, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := b.Migrate(); err != nil {
				return err
			}
			if err := b.Seed(ctx); err != nil {
				return err
			}
			zap.L().Info("[seed] done")
			return shutdowner.Shutdown()
		},
	})
}
