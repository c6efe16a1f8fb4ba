package cmd

import (
	"time"

	"github.com/harrison/teaspoon-report/internal/models"
)

// diagnosticLogger is the logging surface the commands need
type diagnosticLogger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogRenderSummary(result *models.RunResult, duration time.Duration)
}

// multiLogger implements diagnosticLogger by delegating to multiple loggers
type multiLogger struct {
	loggers []diagnosticLogger
}

func (ml *multiLogger) LogTrace(message string) {
	for _, logger := range ml.loggers {
		logger.LogTrace(message)
	}
}

func (ml *multiLogger) LogDebug(message string) {
	for _, logger := range ml.loggers {
		logger.LogDebug(message)
	}
}

func (ml *multiLogger) LogInfo(message string) {
	for _, logger := range ml.loggers {
		logger.LogInfo(message)
	}
}

func (ml *multiLogger) LogWarn(message string) {
	for _, logger := range ml.loggers {
		logger.LogWarn(message)
	}
}

func (ml *multiLogger) LogError(message string) {
	for _, logger := range ml.loggers {
		logger.LogError(message)
	}
}

// LogRenderSummary forwards to all loggers
func (ml *multiLogger) LogRenderSummary(result *models.RunResult, duration time.Duration) {
	for _, logger := range ml.loggers {
		logger.LogRenderSummary(result, duration)
	}
}
