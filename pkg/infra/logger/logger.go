package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NeuralTrust/toxicity-api/pkg/config"
	"github.com/sirupsen/logrus"
)

const fileBufferSize = 32 * 1024

// NewLogger builds the service logger. Entries are JSON encoded on stdout; when cfg.File is set
// they are written through an async buffered file writer and mirrored to stdout by a hook.
// The returned function flushes and closes the file, it is a no-op for stdout only loggers.
func NewLogger(cfg config.LogConfig) (*logrus.Logger, func(), error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(parseLevel(cfg.Level))

	if cfg.File == "" {
		logger.SetOutput(os.Stdout)
		return logger, func() {}, nil
	}

	logFile := filepath.Clean(cfg.File)
	if err := os.MkdirAll(filepath.Dir(logFile), 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	asyncWriter, err := NewAsyncFileWriter(logFile, fileBufferSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}

	logger.SetOutput(asyncWriter)
	logger.AddHook(NewConsoleHook(os.Stdout))

	return logger, asyncWriter.Close, nil
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Discard returns a logger that drops every entry. Useful when wiring components in tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
