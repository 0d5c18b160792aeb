package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/NeuralTrust/toxicity-api/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type panicRecoverMiddleware struct {
	logger *logrus.Logger
}

func NewPanicRecoverMiddleware(logger *logrus.Logger) Middleware {
	return &panicRecoverMiddleware{logger: logger}
}

// Middleware turns a panic into an error so the server error handler answers with a 500.
func (m *panicRecoverMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.WithFields(logrus.Fields{
					"error":      r,
					"path":       c.Path(),
					"request_id": c.Locals(common.RequestIDContextKey),
					"stack":      string(debug.Stack()),
				}).Error("HTTP server panic recovered")

				err = fmt.Errorf("panic recovered: %v", r)
			}
		}()

		return c.Next()
	}
}
