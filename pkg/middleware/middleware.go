package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Middleware interface {
	Middleware() fiber.Handler
}

type Transport struct {
	PanicRecoverMiddleware Middleware
	RequestIDMiddleware    Middleware
	CORSMiddleware         Middleware
	MetricsMiddleware      Middleware
}

// GetMiddlewares returns the handlers in the order they must run. Recover sits closest to the
// route handler so a panic still reaches the access log and metrics as a 500.
func (t *Transport) GetMiddlewares() []interface{} {
	var handlers []interface{}
	for _, m := range []Middleware{t.RequestIDMiddleware, t.CORSMiddleware, t.MetricsMiddleware, t.PanicRecoverMiddleware} {
		if m != nil {
			handlers = append(handlers, m.Middleware())
		}
	}
	return handlers
}

// responseStatus is the status the client will see once the error handler has run.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
