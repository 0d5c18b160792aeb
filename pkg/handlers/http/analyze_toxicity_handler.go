package http

import (
	appToxicity "github.com/NeuralTrust/toxicity-api/pkg/app/toxicity"
	"github.com/NeuralTrust/toxicity-api/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type analyzeToxicityHandler struct {
	logger   *logrus.Logger
	analyzer appToxicity.Analyzer
}

func NewAnalyzeToxicityHandler(logger *logrus.Logger, analyzer appToxicity.Analyzer) Handler {
	return &analyzeToxicityHandler{
		logger:   logger,
		analyzer: analyzer,
	}
}

// Handle @Summary Analyze text toxicity
// @Description Scores the text with the toxicity classifier. The text is toxic when its toxicity score is above the threshold (0.5 by default).
// @Tags Toxicity
// @Accept json
// @Produce json
// @Param request body request.AnalyzeToxicityRequest true "Text to analyze"
// @Success 200 {object} toxicity.Analysis
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Router /analyze-toxicity [post]
func (h *analyzeToxicityHandler) Handle(c *fiber.Ctx) error {
	req, err := request.ParseAnalyzeToxicityRequest(c.Body())
	if err != nil {
		return err
	}

	analysis, err := h.analyzer.Analyze(c.UserContext(), req.GetText())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(analysis)
}
