package core

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

func init() {
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceQuote:      true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(logrus.InfoLevel)
}

// GetLogger returns a named logger entry.
func GetLogger(name string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"logName": name,
	})
}

// SetDebugLogs switches the process logger between info and debug level.
func SetDebugLogs(enabled bool) {
	if enabled {
		logger.SetLevel(logrus.DebugLevel)
		return
	}
	logger.SetLevel(logrus.InfoLevel)
}
