package main

import (
	"context"
	"log/slog"
	"os"

	"chamabook/config"
	"chamabook/internal/delivery"
	"chamabook/internal/delivery/http"
	httpmiddleware "chamabook/internal/delivery/http/middleware"
	"chamabook/internal/delivery/http/router/handler"
	sharedmiddleware "chamabook/internal/delivery/middleware"
	logs "chamabook/internal/infra/log"
	"chamabook/internal/infra/persistence/memory"
	"chamabook/internal/usecase/impl"

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
		memory.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewMemberRepository,
			memory.NewTransactionRepository,
			memory.NewLoanRepository,
			memory.NewPlanRepository,
			memory.NewAdminRepository,
			memory.NewSettingsRepository,
			memory.NewFAQRepository,
			memory.NewNoteRepository,
			memory.NewActivityRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMemberService,
			impl.NewLedgerService,
			impl.NewPlanService,
			impl.NewAdminService,
			impl.NewSettingsService,
			impl.NewFAQService,
			impl.NewNoteService,
			impl.NewActivityService,
			impl.NewDashboardService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			sharedmiddleware.NewRequestIDMiddleware,
			sharedmiddleware.NewLoggerMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMemberHandler,
			handler.NewTransactionHandler,
			handler.NewLoanHandler,
			handler.NewPlanHandler,
			handler.NewAdminHandler,
			handler.NewSettingsHandler,
			handler.NewFAQHandler,
			handler.NewNoteHandler,
			handler.NewActivityHandler,
			handler.NewDashboardHandler,
			handler.NewReportHandler,
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
