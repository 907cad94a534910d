package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"assetgate"
	"assetgate/config"
	"assetgate/internal/application/usecase"
	"assetgate/internal/domain/entity"
	brokerRepository "assetgate/internal/domain/repository/broker"
	"assetgate/internal/infrastructure/broker"
	"assetgate/internal/infrastructure/grpcserver"
	"assetgate/internal/infrastructure/minio"
	"assetgate/internal/infrastructure/origin"
	"assetgate/internal/presentation"
	"assetgate/internal/presentation/handler"
	"assetgate/internal/presentation/middleware"
)

const (
	healthTimeout   = 3 * time.Second
	healthInterval  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func HandleRun(args []string) {
	cfg := loadConfig(args)

	logger.Info("running assetgate", "version", assetgate.StringVersion())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openMetadataStore(ctx, cfg)
	if err != nil {
		ExitOnError(err)
	}
	defer closeStore()

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	minIOGetter := minio.NewGetter(minIOClient, &cfg.MinIOGetter)
	minIOUploader := minio.NewUploader(minIOClient, &cfg.MinIOUploader)

	originFetcher := origin.NewFetcher(cfg.Origin)

	var publisher brokerRepository.Publisher
	if cfg.BrokerEnabled() {
		brokerClient, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()

		publisher = broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	}

	registrar := usecase.NewRegistrar(store, publisher, cfg.Default.PublicURL)
	retriever := usecase.NewRetriever(store, minIOGetter, originFetcher, cfg.CacheControl())
	uploader := usecase.NewUploader(minIOUploader)

	healthHandler := handler.NewHealthHandler(map[string]handler.Check{
		"metadata": store.Ping,
		"objects":  minIOClient.Ping,
	}, healthTimeout)

	e := newEcho(cfg)
	handler.Handlers{
		Register: handler.NewRegisterHandler(registrar),
		Get:      handler.NewGetHandler(retriever),
		Head:     handler.NewHeadHandler(retriever),
		Upload:   handler.NewUploadHandler(uploader),
		Health:   healthHandler,
	}.Mount(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if cfg.GRPCServer.Port != 0 {
		grpcServer, err := grpcserver.New(cfg.GRPCServer)
		if err != nil {
			ExitOnError(err)
		}
		defer grpcServer.Stop()

		go func() {
			if err := grpcServer.Start(); err != nil {
				logger.Error("grpc server stopped", "err", err)
			}
		}()

		go refreshHealth(ctx, grpcServer, healthHandler)
	}

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down assetgate")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "err", err)
	}
}

func newEcho(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodHead, http.MethodOptions},
		ExposeHeaders: []string{entity.HeaderAssetID, entity.HeaderVariant, entity.HeaderVariantRequested,
			entity.HeaderWidth, entity.HeaderHeight, entity.HeaderOriginalWidth, entity.HeaderOriginalHeight,
			presentation.ReasonTag},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(middleware.Metrics())
	e.Use(echoMiddleware.BodyLimitWithConfig(echoMiddleware.BodyLimitConfig{
		Limit: "50M",
		// Uploads stream to the object store and are bounded by its timeout instead.
		Skipper: func(c echo.Context) bool { return c.Path() == "/objects" },
	}))
	if limit, ok := cfg.RateLimit(); ok {
		e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(limit)))
	}

	return e
}

func refreshHealth(ctx context.Context, srv *grpcserver.Server, h *handler.HealthHandler) {
	ticker := time.NewTicker(healthInterval)
	defer ticker.Stop()

	for {
		srv.Refresh(ctx, h.Probe)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
