package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	mu     sync.Mutex
)

// InitLogger configures the process-wide logger. Inside Lambda the output is JSON so CloudWatch
// can index the fields; elsewhere it is the text formatter with full timestamps.
// Calling it again reconfigures the same *logrus.Logger, so package-level copies stay valid.
func InitLogger(level logrus.Level) *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stdout)
	}
	logger.SetLevel(level)
	if InLambda() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return logger
}

// GetLogger returns the process logger, creating an info-level one if InitLogger was never called.
func GetLogger() *logrus.Logger {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l == nil {
		return InitLogger(logrus.InfoLevel)
	}
	return l
}

// ParseLevel is logrus.ParseLevel with an empty string meaning info.
func ParseLevel(level string) (logrus.Level, error) {
	if level == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(level)
}

// InLambda reports whether the process was started by the Lambda runtime.
func InLambda() bool {
	return os.Getenv("AWS_LAMBDA_RUNTIME_API") != ""
}
