package main

import (
	"context"
	"log/slog"
	"os"

	"vouch/config"
	"vouch/internal/delivery"
	"vouch/internal/delivery/http"
	"vouch/internal/delivery/http/middleware"
	"vouch/internal/delivery/http/router/handler"
	"vouch/internal/domain/service"
	"vouch/internal/infra/ai"
	logs "vouch/internal/infra/log"
	"vouch/internal/infra/mail"
	"vouch/internal/infra/metrics"
	"vouch/internal/infra/persistence/postgres"
	"vouch/internal/infra/qrcode"
	"vouch/internal/infra/storage"
	"vouch/internal/usecase/impl"

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
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCompanyRepository,
			postgres.NewProfileRepository,
			postgres.NewVideoRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
			newUploadSigner,
			newMailer,
			newReviewGenerator,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	baseURL := ""
	if cfg.Public != nil {
		baseURL = cfg.Public.BaseURL
	}
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(baseURL, 256, "M")
	}

	return qrcode.NewQRCodeService(baseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newUploadSigner opens the upload bucket and ties its closer to the app lifecycle.
func newUploadSigner(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (service.UploadSigner, error) {
	signer, closeBucket, err := storage.NewBlobSigner(ctx, cfg.Upload)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return closeBucket()
		},
	})

	return signer, nil
}

// newMailer creates the Sendgrid mailer; nil when mail is not configured.
func newMailer(cfg *config.Config) service.Mailer {
	return mail.NewSendgridMailer(cfg.Mail)
}

// newReviewGenerator creates the Ollama-backed review generator.
func newReviewGenerator(cfg *config.Config) (service.ReviewGenerator, error) {
	return ai.NewOllamaGenerator(cfg.Assistant)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTenantService,
			impl.NewCompanyService,
			impl.NewVideoService,
			impl.NewReviewService,
			impl.NewSubmissionService,
			impl.NewWidgetService,
			impl.NewAssistantService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewTenantMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCompanyHandler,
			handler.NewVideoHandler,
			handler.NewReviewHandler,
			handler.NewSubmissionHandler,
			handler.NewWidgetHandler,
			handler.NewAssistantHandler,
			handler.NewUploadHandler,
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
