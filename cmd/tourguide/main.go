package main

import (
	"context"
	"log/slog"
	"os"

	"tourguide/config"
	"tourguide/internal/delivery"
	"tourguide/internal/delivery/http"
	"tourguide/internal/delivery/http/router/handler"
	"tourguide/internal/infra/gpsutil"
	logs "tourguide/internal/infra/log"
	"tourguide/internal/infra/persistence/memory"
	"tourguide/internal/infra/pubsub"
	"tourguide/internal/infra/rewardcentral"
	"tourguide/internal/infra/seed"
	"tourguide/internal/infra/trippricer"
	"tourguide/internal/usecase"
	"tourguide/internal/usecase/impl"
	"tourguide/internal/worker/tracking"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectWorker(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			seedUsers,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewUserRegistry,
			memory.NewLocationHistory,
			memory.NewRewardLedger,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			gpsutil.NewPositionProvider,
			gpsutil.NewAttractionCatalog,
			rewardcentral.New,
			trippricer.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRewardsService,
			impl.NewTourService,
		),
	)
}

func injectWorker() fx.Option {
	return fx.Options(
		fx.Provide(
			tracking.New,
			func(t *tracking.Tracker) usecase.TrackingLifecycle { return t },
			seed.New,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTourHandler,
			handler.NewUserHandler,
			handler.NewTrackerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func seedUsers(ctx context.Context, seeder *seed.Seeder) error {
	return seeder.Run(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
