package router

import (
	"errors"

	"github.com/NeuralTrust/toxicity-api/pkg/common"
	handlers "github.com/NeuralTrust/toxicity-api/pkg/handlers/http"
	"github.com/NeuralTrust/toxicity-api/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

var (
	ErrInvalidHandlerTransport = errors.New("invalid handler transport")
)

const (
	SwaggerPath = "/swagger.json"
	DocsPath    = "/docs/*"
)

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
	swaggerFile         string
}

// NewAPIRouter builds the public routes. Docs are served from swaggerFile when it is not empty.
func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	swaggerFile string,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		swaggerFile:         swaggerFile,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h.AnalyzeToxicityHandler == nil || h.HealthHandler == nil || h.ReadinessHandler == nil || h.GetVersionHandler == nil {
		return ErrInvalidHandlerTransport
	}

	if r.middlewareTransport != nil {
		if mws := r.middlewareTransport.GetMiddlewares(); len(mws) > 0 {
			router.Use(mws...)
		}
	}

	router.Get(common.HealthPath, h.HealthHandler.Handle)
	router.Get(common.ReadyPath, h.ReadinessHandler.Handle)
	router.Get(common.VersionPath, h.GetVersionHandler.Handle)

	if r.swaggerFile != "" {
		router.Static(SwaggerPath, r.swaggerFile)
		router.Get(DocsPath, swagger.New(swagger.Config{
			URL: SwaggerPath,
		}))
	}

	router.Post(common.AnalyzeToxicityPath, h.AnalyzeToxicityHandler.Handle)

	return nil
}
