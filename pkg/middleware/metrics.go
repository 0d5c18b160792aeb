package middleware

import (
	"time"

	"github.com/NeuralTrust/toxicity-api/pkg/common"
	"github.com/NeuralTrust/toxicity-api/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
)

type metricsMiddleware struct{}

func NewMetricsMiddleware() Middleware {
	return &metricsMiddleware{}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !prometheus.Config.Enabled {
			return c.Next()
		}

		startTime, ok := c.Locals(common.LatencyContextKey).(time.Time)
		if !ok {
			startTime = time.Now()
		}

		err := c.Next()

		status := responseStatus(c, err)
		// route template, not the raw path
		prometheus.ObserveRequest(c.Method(), c.Route().Path, status, time.Since(startTime))

		return err
	}
}
