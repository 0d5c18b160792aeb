package common

const (
	RequestIDHeader = "X-Request-ID"

	AnalyzeToxicityPath = "/analyze-toxicity"
	HealthPath          = "/health"
	ReadyPath           = "/ready"
	VersionPath         = "/version"
	MetricsPath         = "/metrics"
)
