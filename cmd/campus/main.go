package main

import (
	"log"

	"github.com/bwmarrin/snowflake"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"campus-rewards/internal/httpapi"
	"campus-rewards/pkg/config"
	"campus-rewards/pkg/db"
	"campus-rewards/pkg/health"
	"campus-rewards/pkg/logger"
	"campus-rewards/pkg/randsource"
	"campus-rewards/pkg/redis"
	"campus-rewards/pkg/server"
	"campus-rewards/services/bootstrap"
	"campus-rewards/services/buddy"
	"campus-rewards/services/catalog"
	"campus-rewards/services/leaderboard"
	"campus-rewards/services/member"
	"campus-rewards/services/redemption"
	"campus-rewards/services/rewards"
	"campus-rewards/services/rsvp"
)

func main() {
	opts := []fx.Option{
		config.Module,
		logger.Module,
		db.Module,
		redis.Module,
		randsource.Module,
		health.Module,
		fx.Provide(
			provideTracerProvider,
			provideSnowflakeNode,
		),
		bootstrap.Module,
		catalog.Module,
		member.Module,
		rsvp.Module,
		rewards.Module,
		leaderboard.Module,
		redemption.Module,
		buddy.Module,
		httpapi.Module,
		server.Module,
		fxLogger,
	}

	if err := fx.ValidateApp(opts...); err != nil {
		log.Fatalf("fx validation failed: %v", err)
	}

	app := fx.New(opts...)

	app.Run()
}

var fxLogger = fx.WithLogger(func(cfg *config.Config, logger *zap.Logger) fxevent.Logger {
	return fxevent.NopLogger
})

func provideTracerProvider() trace.TracerProvider {
	return otel.GetTracerProvider()
}

func provideSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
