package classifier

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/NeuralTrust/toxicity-api/pkg/config"
	"github.com/NeuralTrust/toxicity-api/pkg/domain"
	"github.com/NeuralTrust/toxicity-api/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
)

// New builds the classifier selected by cfg.Provider. An empty provider selects Detoxify.
func New(cfg config.ClassifierConfig, logger *logrus.Logger) (Classifier, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = ProviderDetoxify
	}
	breaker := httpx.NewCircuitBreaker(provider, cfg.Breaker.Timeout, cfg.Breaker.MaxFailures, logger)

	switch provider {
	case ProviderDetoxify:
		return NewDetoxifyClient(
			cfg.BaseURL,
			logger,
			WithHTTPClient(httpx.NewFastHTTPClient(httpx.WithTimeout(cfg.Timeout))),
			WithCircuitBreaker(breaker),
			WithToken(cfg.Token),
			WithModel(cfg.Model),
		), nil
	case ProviderOpenAI:
		opts := []OpenAIClientOption{
			WithOpenAIHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			WithOpenAICircuitBreaker(breaker),
			WithOpenAIModel(cfg.Model),
		}
		if cfg.BaseURL != "" && cfg.BaseURL != config.DefaultDetoxifyURL {
			opts = append(opts, WithOpenAIBaseURL(cfg.BaseURL))
		}
		return NewOpenAIClient(cfg.APIKey, logger, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, cfg.Provider)
	}
}
