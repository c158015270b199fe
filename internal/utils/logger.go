package utils

import (
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Logger exposes the shared logrus instance for middleware.
func Logger() *logrus.Logger { return log }

// LogEvent prints a standardized entry with module/action/request_id fields.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	log.WithFields(logrus.Fields{
		"module":     strings.ToUpper(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	}).Info(message)
}

// LogError mirrors LogEvent at error level.
func LogError(requestID, module, action string, err error) {
	entry := log.WithFields(logrus.Fields{
		"module":     strings.ToUpper(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	})
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error("operation failed")
}
