package middleware

import (
	"context"
	"time"

	"github.com/NeuralTrust/toxicity-api/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type requestIDMiddleware struct {
	logger *logrus.Logger
}

// NewRequestIDMiddleware tags every request with an ID (taken from X-Request-ID or generated),
// echoes it on the response and writes one access log entry per request.
func NewRequestIDMiddleware(logger *logrus.Logger) Middleware {
	return &requestIDMiddleware{logger: logger}
}

func (m *requestIDMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		c.Locals(common.LatencyContextKey, start)

		requestID := c.Get(common.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(common.RequestIDContextKey, requestID)
		c.SetUserContext(context.WithValue(c.UserContext(), common.RequestIDContextKey, requestID))
		c.Set(common.RequestIDHeader, requestID)

		err := c.Next()

		status := responseStatus(c, err)

		entry := m.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
		})
		if err != nil {
			entry.WithError(err).Error("request failed")
		} else {
			entry.Info("request completed")
		}

		return err
	}
}
