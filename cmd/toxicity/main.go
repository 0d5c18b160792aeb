package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/toxicity-api/pkg/config"
	"github.com/NeuralTrust/toxicity-api/pkg/dependency_container"
	infraLogger "github.com/NeuralTrust/toxicity-api/pkg/infra/logger"
	"github.com/NeuralTrust/toxicity-api/pkg/server"
	"github.com/NeuralTrust/toxicity-api/pkg/server/router"
	"github.com/NeuralTrust/toxicity-api/pkg/version"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, closeLogger, err := infraLogger.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer closeLogger()

	logger.WithField("version", version.GetInfo().String()).Info("starting service")

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		logger.WithError(err).Error("failed to initialize dependencies")
		closeLogger()
		os.Exit(1)
	}

	docs := ""
	if cfg.Server.DocsEnabled {
		docs = swaggerFile
	}
	srv, err := server.NewAPIServer(server.APIServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewAPIRouter(&container.MiddlewareTransport, container.HandlerTransport, docs),
		},
	})
	if err != nil {
		logger.WithError(err).Error("failed to initialize server")
		closeLogger()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(srv.RunMetrics)
	g.Go(func() error {
		<-gctx.Done()
		return srv.Shutdown()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("server stopped with error")
		closeLogger()
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}
