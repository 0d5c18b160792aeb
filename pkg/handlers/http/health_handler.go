package http

import (
	"context"
	"time"

	"github.com/NeuralTrust/toxicity-api/pkg/infra/classifier"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const readinessTimeout = 2 * time.Second

type healthHandler struct{}

func NewHealthHandler() Handler {
	return &healthHandler{}
}

// Handle @Summary Liveness probe
// @Tags Probes
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *healthHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

type readinessHandler struct {
	logger     *logrus.Logger
	classifier classifier.Classifier
}

func NewReadinessHandler(logger *logrus.Logger, classifier classifier.Classifier) Handler {
	return &readinessHandler{
		logger:     logger,
		classifier: classifier,
	}
}

// Handle @Summary Readiness probe
// @Description Reports whether the toxicity classifier can serve predictions
// @Tags Probes
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ready [get]
func (h *readinessHandler) Handle(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readinessTimeout)
	defer cancel()

	if err := h.classifier.Ready(ctx); err != nil {
		h.logger.WithError(err).WithField("provider", h.classifier.Provider()).Warn("classifier is not ready")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "not ready",
			"reason": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "ready",
		"provider": h.classifier.Provider(),
	})
}
