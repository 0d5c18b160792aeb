package server

import (
	"errors"
	"fmt"

	"github.com/NeuralTrust/toxicity-api/pkg/common"
	"github.com/NeuralTrust/toxicity-api/pkg/config"
	"github.com/NeuralTrust/toxicity-api/pkg/infra/prometheus"
	"github.com/NeuralTrust/toxicity-api/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const internalServerError = "Internal Server Error"

// Server interface defines the common behavior for all servers
type Server interface {
	Run() error
	RunMetrics() error
	Shutdown() error
}

type BaseServer struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Router     *fiber.App
	metricsApp *fiber.App
}

func NewBaseServer(config *config.Config, logger *logrus.Logger) *BaseServer {
	r := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReduceMemoryUsage:     true,
		Network:               fiber.NetworkTCP,
		EnablePrintRoutes:     false,
		BodyLimit:             config.Server.BodyLimit,
		ReadTimeout:           config.Server.ReadTimeout,
		WriteTimeout:          config.Server.WriteTimeout,
		IdleTimeout:           config.Server.IdleTimeout,
		ErrorHandler:          ErrorHandler,
	})

	r.Server().NoDefaultServerHeader = true
	r.Server().NoDefaultContentType = true

	server := &BaseServer{
		Config: config,
		Logger: logger,
		Router: r,
	}
	if config.Metrics.Enabled {
		server.metricsApp = newMetricsApp()
	}
	return server
}

// ErrorHandler keeps the status of *fiber.Error values and hides every other failure behind a
// generic 500. Details are in the access log entry of the request.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": internalServerError})
}

func (s *BaseServer) WithRouters(routers ...router.ServerRouter) error {
	for _, r := range routers {
		if err := r.BuildRoutes(s.Router); err != nil {
			return fmt.Errorf("failed to build routes: %w", err)
		}
	}
	return nil
}

// RunMetrics serves prometheus metrics on their own port. It returns immediately when metrics
// are disabled.
func (s *BaseServer) RunMetrics() error {
	if s.metricsApp == nil {
		s.Logger.Info("prometheus metrics are disabled by configuration")
		return nil
	}

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.MetricsPort)
	s.Logger.WithField("addr", addr).Info("starting metrics server")
	return s.metricsApp.Listen(addr)
}

func (s *BaseServer) shutdownMetrics() error {
	if s.metricsApp == nil {
		return nil
	}
	return s.metricsApp.ShutdownWithTimeout(s.Config.Server.ShutdownTimeout)
}

func newMetricsApp() *fiber.App {
	metricsApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	metricsApp.Use(recover.New())

	handler := fasthttpadaptor.NewFastHTTPHandler(prometheus.Handler())
	metricsApp.Get(common.MetricsPath, func(c *fiber.Ctx) error {
		handler(c.Context())
		return nil
	})
	return metricsApp
}
