package toxicity

import (
	"context"
	"errors"
	"time"

	"github.com/NeuralTrust/toxicity-api/pkg/domain/toxicity"
	"github.com/NeuralTrust/toxicity-api/pkg/infra/classifier"
	"github.com/NeuralTrust/toxicity-api/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Analyzer --dir=. --output=./mocks --filename=toxicity_analyzer_mock.go --case=underscore --with-expecter
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*toxicity.Analysis, error)
}

type analyzer struct {
	logger     *logrus.Logger
	classifier classifier.Classifier
	threshold  float64
}

func NewAnalyzer(
	logger *logrus.Logger,
	classifier classifier.Classifier,
	threshold float64,
) Analyzer {
	return &analyzer{
		logger:     logger,
		classifier: classifier,
		threshold:  threshold,
	}
}

func (a *analyzer) Analyze(ctx context.Context, text string) (*toxicity.Analysis, error) {
	start := time.Now()
	scores, err := a.classifier.Predict(ctx, text)
	prometheus.ObservePrediction(a.classifier.Provider(), time.Since(start), err)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			a.logger.WithError(err).WithField("provider", a.classifier.Provider()).Error("failed to classify text")
		}
		return nil, err
	}

	analysis := toxicity.NewAnalysis(scores, a.threshold)
	prometheus.ObserveVerdict(analysis.Toxic)

	a.logger.WithFields(logrus.Fields{
		"provider": a.classifier.Provider(),
		"toxic":    analysis.Toxic,
		"score":    analysis.Score,
		"length":   len(text),
	}).Debug("text classified")

	return analysis, nil
}
