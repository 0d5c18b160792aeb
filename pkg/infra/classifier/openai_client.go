package classifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/NeuralTrust/toxicity-api/pkg/domain"
	"github.com/NeuralTrust/toxicity-api/pkg/domain/toxicity"
	"github.com/NeuralTrust/toxicity-api/pkg/infra/httpx"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/sirupsen/logrus"
)

const (
	DefaultOpenAIModel = openai.ModerationModelOmniModerationLatest
	httpClientTimeout  = 30 * time.Second
)

var ErrMissingAPIKey = errors.New("openai api key is not configured")

// OpenAIClient scores text with the OpenAI moderation endpoint. Moderation has no single
// toxicity category, so the highest category score stands in for it.
type OpenAIClient struct {
	client         openai.Client
	httpClient     *http.Client
	logger         *logrus.Logger
	circuitBreaker httpx.CircuitBreaker
	apiKey         string
	baseURL        string
	model          string
}

func NewOpenAIClient(apiKey string, logger *logrus.Logger, opts ...OpenAIClientOption) Classifier {
	c := &OpenAIClient{
		logger: logger,
		apiKey: apiKey,
		model:  DefaultOpenAIModel,
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.circuitBreaker == nil {
		c.circuitBreaker = httpx.NewCircuitBreaker(ProviderOpenAI, 30*time.Second, 5, logger)
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(c.httpClient),
		option.WithMaxRetries(0),
	}
	if c.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(c.baseURL))
	}
	c.client = openai.NewClient(clientOpts...)
	return c
}

func (c *OpenAIClient) Provider() string {
	return ProviderOpenAI
}

func (c *OpenAIClient) Predict(ctx context.Context, text string) (toxicity.Scores, error) {
	var scores toxicity.Scores
	err := c.circuitBreaker.Execute(func() error {
		var err error
		scores, err = c.executeModerationRequest(ctx, text)
		return err
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.logger.WithError(err).Error("openai moderation failed (circuit breaker)")
		}
		return nil, err
	}
	return scores, nil
}

func (c *OpenAIClient) executeModerationRequest(ctx context.Context, text string) (toxicity.Scores, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrClassifierCall, ErrMissingAPIKey)
	}
	resp, err := c.client.Moderations.New(ctx, openai.ModerationNewParams{
		Input: openai.ModerationNewParamsInputUnion{OfString: openai.String(text)},
		Model: openai.ModerationModel(c.model),
	})
	if err != nil {
		if cause := context.Cause(ctx); cause != nil {
			return nil, context.Canceled
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrClassifierCall, err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("%w: moderation returned no results", domain.ErrInvalidClassifierOutput)
	}

	scores, err := ParseScores([]byte(resp.Results[0].CategoryScores.RawJSON()))
	if err != nil {
		return nil, err
	}
	if _, ok := scores[toxicity.Category]; !ok {
		scores[toxicity.Category] = maxScore(scores)
	}
	return scores, nil
}

// Ready only checks configuration; probing the API would spend quota.
func (c *OpenAIClient) Ready(_ context.Context) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func maxScore(scores toxicity.Scores) float64 {
	var highest float64
	for _, score := range scores {
		if score > highest {
			highest = score
		}
	}
	return highest
}
