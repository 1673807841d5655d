package service

import (
	"quizcraft/internal/logger"

	"go.uber.org/zap"
)

// LogProgressReporter writes ladder phase notifications to the
// application log. The web UI consumes the same phases via its own
// reporter; server-side they are only worth a log line.
type LogProgressReporter struct{}

func NewLogProgressReporter() *LogProgressReporter {
	return &LogProgressReporter{}
}

func (r *LogProgressReporter) Report(phase string) {
	logger.Get().Info("Generation progress", zap.String("phase", phase))
}
