package logutils

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// UTCFormatter is a log formatter that prints with UTC timestamps.
type UTCFormatter struct {
	logrus.Formatter
}

func (u *UTCFormatter) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.UTC()
	return u.Formatter.Format(e)
}

// Levels and formats accepted by Configure.
var (
	Levels  = []string{"DEBUG", "INFO", "WARN", "ERROR"}
	Formats = []string{"TEXT", "JSON"}
)

// Configure applies a level and format to logger.
func Configure(logger *logrus.Logger, level, format string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	formatter, err := NewFormatter(format)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	logger.SetFormatter(formatter)
	return nil
}

func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return logrus.DebugLevel, nil
	case "", "INFO":
		return logrus.InfoLevel, nil
	case "WARN":
		return logrus.WarnLevel, nil
	case "ERROR":
		return logrus.ErrorLevel, nil
	}
	return logrus.InfoLevel, fmt.Errorf("unknown log level %q", level)
}

func NewFormatter(format string) (logrus.Formatter, error) {
	switch strings.ToUpper(strings.TrimSpace(format)) {
	case "JSON":
		return &UTCFormatter{Formatter: &logrus.JSONFormatter{}}, nil
	case "", "TEXT":
		return &UTCFormatter{Formatter: &logrus.TextFormatter{FullTimestamp: true}}, nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

func SetupTestLogging() {
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&UTCFormatter{Formatter: &logrus.TextFormatter{FullTimestamp: true}})
}
