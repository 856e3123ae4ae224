package logger

import (
	"os"
	"runtime"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

var logger = log.New()

func init() {
	logger.Out = os.Stderr
	logger.Formatter = &log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	}
	logger.SetLevel(log.InfoLevel)
}

// Configure sets the level ("debug", "info", ...) and the format ("text" or "json")
func Configure(level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		logger.Formatter = &log.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		}
	}
	return nil
}

// Base exposes the underlying logger, e.g. to redirect output in tests
func Base() *log.Logger {
	return logger
}

// GetLogger returns an entry annotated with the calling function
func GetLogger() *log.Entry {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return log.NewEntry(logger)
	}
	return logger.WithField("function", runtime.FuncForPC(pc).Name())
}
