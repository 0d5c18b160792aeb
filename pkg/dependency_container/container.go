package dependency_container

import (
	"fmt"

	appToxicity "github.com/NeuralTrust/toxicity-api/pkg/app/toxicity"
	"github.com/NeuralTrust/toxicity-api/pkg/config"
	handlers "github.com/NeuralTrust/toxicity-api/pkg/handlers/http"
	"github.com/NeuralTrust/toxicity-api/pkg/infra/classifier"
	"github.com/NeuralTrust/toxicity-api/pkg/infra/prometheus"
	"github.com/NeuralTrust/toxicity-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Classifier          classifier.Classifier
	Analyzer            appToxicity.Analyzer
	HandlerTransport    handlers.HandlerTransport
	MiddlewareTransport middleware.Transport
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	// NewClassifier defaults to classifier.New. Tests swap in a stub backend.
	NewClassifier func(cfg config.ClassifierConfig, logger *logrus.Logger) (classifier.Classifier, error)
}

// NewContainer builds every long-lived component once. The classifier handle created here is
// the only one in the process and is shared by all requests.
func NewContainer(di ContainerDI) (*Container, error) {
	if di.Cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	newClassifier := di.NewClassifier
	if newClassifier == nil {
		newClassifier = classifier.New
	}

	prometheus.Initialize(prometheus.MetricsConfig{Enabled: di.Cfg.Metrics.Enabled})

	toxicityClassifier, err := newClassifier(di.Cfg.Classifier, di.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize classifier: %w", err)
	}

	analyzer := appToxicity.NewAnalyzer(di.Logger, toxicityClassifier, di.Cfg.Classifier.Threshold)

	handlerTransport := handlers.HandlerTransport{
		AnalyzeToxicityHandler: handlers.NewAnalyzeToxicityHandler(di.Logger, analyzer),
		HealthHandler:          handlers.NewHealthHandler(),
		ReadinessHandler:       handlers.NewReadinessHandler(di.Logger, toxicityClassifier),
		GetVersionHandler:      handlers.NewGetVersionHandler(),
	}

	container := &Container{
		Classifier:       toxicityClassifier,
		Analyzer:         analyzer,
		HandlerTransport: handlerTransport,
		MiddlewareTransport: middleware.Transport{
			PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(di.Logger),
			RequestIDMiddleware:    middleware.NewRequestIDMiddleware(di.Logger),
			CORSMiddleware:         middleware.NewCORSMiddleware(di.Cfg.Server.CORS),
			MetricsMiddleware:      middleware.NewMetricsMiddleware(),
		},
	}

	di.Logger.WithField("provider", toxicityClassifier.Provider()).Info("toxicity classifier initialized")

	return container, nil
}
