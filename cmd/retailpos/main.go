package main

import (
	"context"
	"log/slog"
	"os"

	"retailpos/config"
	"retailpos/internal/delivery"
	"retailpos/internal/delivery/http"
	"retailpos/internal/delivery/http/middleware"
	"retailpos/internal/delivery/http/router/handler"
	"retailpos/internal/domain/repository"
	"retailpos/internal/domain/service"
	logs "retailpos/internal/infra/log"
	"retailpos/internal/infra/persistence/postgres"
	"retailpos/internal/infra/spreadsheet"
	"retailpos/internal/infra/storage"
	"retailpos/internal/usecase"
	"retailpos/internal/usecase/impl"

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
		storage.New,
		spreadsheet.NewParser,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewPurchaseRepository,
			postgres.NewPredictionRepository,
			postgres.NewStoreRepository,
			postgres.NewUserRepository,
			postgres.NewVatRateRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewIntakeService,
			impl.NewCheckoutService,
			impl.NewStoreService,
			impl.NewVatService,
			newImportService,
		),
	)
}

// newImportService binds the configured row limit into the import service.
func newImportService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	predictionRepo repository.PredictionRepository,
	parser service.WorkbookParser,
	logger *slog.Logger,
) usecase.ImportUsecase {
	maxRows := 0
	if cfg.Import != nil {
		maxRows = cfg.Import.MaxRows
	}

	return impl.NewImportService(txManager, predictionRepo, parser, maxRows, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewImportHandler,
			handler.NewStoreHandler,
			handler.NewVatHandler,
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
