package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/NeuralTrust/toxicity-api/pkg/domain"
	"github.com/NeuralTrust/toxicity-api/pkg/domain/toxicity"
	"github.com/NeuralTrust/toxicity-api/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
)

const (
	predictPath = "/predict"
	healthPath  = "/health"

	DefaultDetoxifyModel = "original"

	maxPredictResponseSize = 1 << 20
	maxErrorBodySize       = 512
)

type predictRequest struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}

// DetoxifyClient talks to a Detoxify model served over HTTP. The sidecar answers
// POST /predict with a flat object of category probabilities.
type DetoxifyClient struct {
	client         httpx.Client
	logger         *logrus.Logger
	circuitBreaker httpx.CircuitBreaker
	baseURL        string
	token          string
	model          string
}

func NewDetoxifyClient(baseURL string, logger *logrus.Logger, opts ...DetoxifyClientOption) Classifier {
	c := &DetoxifyClient{
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   DefaultDetoxifyModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = httpx.NewFastHTTPClient()
	}
	if c.circuitBreaker == nil {
		c.circuitBreaker = httpx.NewCircuitBreaker(ProviderDetoxify, 30*time.Second, 5, logger)
	}
	return c
}

func (c *DetoxifyClient) Provider() string {
	return ProviderDetoxify
}

func (c *DetoxifyClient) Predict(ctx context.Context, text string) (toxicity.Scores, error) {
	var scores toxicity.Scores
	err := c.circuitBreaker.Execute(func() error {
		var err error
		scores, err = c.executePredictRequest(ctx, text)
		return err
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.logger.WithError(err).Error("detoxify prediction failed (circuit breaker)")
		}
		return nil, err
	}
	return scores, nil
}

func (c *DetoxifyClient) executePredictRequest(ctx context.Context, text string) (toxicity.Scores, error) {
	body, err := json.Marshal(predictRequest{Text: text, Model: c.model})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal predict request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+predictPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Token", c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if cause := context.Cause(ctx); cause != nil {
			return nil, context.Canceled
		}
		c.logger.WithError(err).WithField("error_type", fmt.Sprintf("%T", err)).Error("failed to call detoxify")
		return nil, fmt.Errorf("%w: %w", domain.ErrClassifierCall, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize)) //nolint:errcheck
		c.logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        string(detail),
		}).Error("detoxify returned non-200 status")
		return nil, fmt.Errorf("%w: status %d", domain.ErrClassifierCall, resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxPredictResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: predict response read error: %w", domain.ErrClassifierCall, err)
	}

	return ParseScores(payload)
}

func (c *DetoxifyClient) Ready(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return fmt.Errorf("failed to create health request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Token", c.token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrClassifierCall, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize)) //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health status %d", domain.ErrClassifierCall, resp.StatusCode)
	}
	return nil
}
