package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequestBody      = errors.New("invalid request body")
	ErrClassifierCall          = errors.New("classifier call failed")
	ErrInvalidClassifierOutput = errors.New("invalid classifier output")
	ErrUnknownProvider         = errors.New("unknown classifier provider")
)

type scoreError struct {
	Category string
	Raw      string
}

func (e *scoreError) Error() string {
	return fmt.Sprintf("category '%s' has a non numeric score: %s", e.Category, e.Raw)
}

func (e *scoreError) Unwrap() error {
	return ErrInvalidClassifierOutput
}

func NewScoreError(category, raw string) error {
	return &scoreError{
		Category: category,
		Raw:      raw,
	}
}

func IsScoreError(err error) bool {
	if err == nil {
		return false
	}
	var se *scoreError
	return errors.As(err, &se)
}
