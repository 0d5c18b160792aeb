package classifier

import (
	"context"

	"github.com/NeuralTrust/toxicity-api/pkg/domain/toxicity"
)

const (
	ProviderDetoxify = "detoxify"
	ProviderOpenAI   = "openai"
)

// Classifier is the pretrained toxicity model. Implementations are safe for concurrent use and
// are shared by every request.
//
//go:generate mockery --name=Classifier --dir=. --output=./mocks --filename=classifier_mock.go --case=underscore --with-expecter
type Classifier interface {
	// Predict returns the probability of every category the model knows about for text.
	Predict(ctx context.Context, text string) (toxicity.Scores, error)
	// Ready reports whether the model can serve predictions.
	Ready(ctx context.Context) error
	Provider() string
}
