package classifier

import (
	"net/http"

	"github.com/NeuralTrust/toxicity-api/pkg/infra/httpx"
)

// DetoxifyClientOption is a function that configures a DetoxifyClient
type DetoxifyClientOption func(*DetoxifyClient)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client httpx.Client) DetoxifyClientOption {
	return func(c *DetoxifyClient) {
		if client != nil {
			c.client = client
		}
	}
}

func WithCircuitBreaker(cb httpx.CircuitBreaker) DetoxifyClientOption {
	return func(c *DetoxifyClient) {
		if cb != nil {
			c.circuitBreaker = cb
		}
	}
}

// WithToken sends token in the Token header of every sidecar call.
func WithToken(token string) DetoxifyClientOption {
	return func(c *DetoxifyClient) {
		c.token = token
	}
}

func WithModel(model string) DetoxifyClientOption {
	return func(c *DetoxifyClient) {
		if model != "" {
			c.model = model
		}
	}
}

// OpenAIClientOption is a function that configures an OpenAIClient
type OpenAIClientOption func(*OpenAIClient)

func WithOpenAIBaseURL(baseURL string) OpenAIClientOption {
	return func(c *OpenAIClient) {
		c.baseURL = baseURL
	}
}

func WithOpenAIModel(model string) OpenAIClientOption {
	return func(c *OpenAIClient) {
		if model != "" {
			c.model = model
		}
	}
}

func WithOpenAIHTTPClient(client *http.Client) OpenAIClientOption {
	return func(c *OpenAIClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithOpenAICircuitBreaker(cb httpx.CircuitBreaker) OpenAIClientOption {
	return func(c *OpenAIClient) {
		if cb != nil {
			c.circuitBreaker = cb
		}
	}
}
