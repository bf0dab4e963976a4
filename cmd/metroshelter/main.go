package main

import (
	"context"
	"log/slog"
	"os"

	"metroshelter/config"
	"metroshelter/internal/delivery"
	"metroshelter/internal/delivery/http"
	"metroshelter/internal/delivery/http/middleware"
	"metroshelter/internal/delivery/http/router/handler"
	"metroshelter/internal/infra/auth"
	"metroshelter/internal/infra/blob"
	logs "metroshelter/internal/infra/log"
	"metroshelter/internal/infra/persistence/postgres"
	"metroshelter/internal/usecase/impl"

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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPropertyRepository,
			postgres.NewReviewRepository,
			postgres.NewWishlistRepository,
			postgres.NewOfferRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			blob.NewBucketStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTokenUsecase,
			impl.NewUserService,
			impl.NewListingService,
			impl.NewReviewService,
			impl.NewWishlistService,
			impl.NewOfferService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewPropertyHandler,
			handler.NewReviewHandler,
			handler.NewWishlistHandler,
			handler.NewOfferHandler,
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
