package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NeuralTrust/toxicity-api/pkg/domain"
)

type AnalyzeToxicityRequest struct {
	// Text defaults to "" when absent or null.
	Text *string `json:"text,omitempty" example:"you are an idiot"`
}

func (r *AnalyzeToxicityRequest) GetText() string {
	if r == nil || r.Text == nil {
		return ""
	}
	return *r.Text
}

// ParseAnalyzeToxicityRequest decodes body, which must be a JSON object.
func ParseAnalyzeToxicityRequest(body []byte) (*AnalyzeToxicityRequest, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", domain.ErrInvalidRequestBody)
	}
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: body must be a JSON object", domain.ErrInvalidRequestBody)
	}
	var req AnalyzeToxicityRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: field %q must be a string", domain.ErrInvalidRequestBody, typeErr.Field)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequestBody, err)
	}
	return &req, nil
}
