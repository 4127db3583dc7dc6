package logutils

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	logger := logrus.New()
	require.NoError(t, Configure(logger, "debug", "JSON"))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	require.Error(t, Configure(logger, "LOUD", "TEXT"))
	require.Error(t, Configure(logger, "INFO", "XML"))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestUTCFormatterConvertsTime(t *testing.T) {
	formatter, err := NewFormatter("JSON")
	require.NoError(t, err)

	zone := time.FixedZone("UTC+2", 2*60*60)
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2024, 3, 1, 12, 0, 0, 0, zone),
		Level:   logrus.InfoLevel,
		Message: "hello",
		Data:    logrus.Fields{},
	}
	out, err := formatter.Format(entry)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out), &decoded))
	assert.Equal(t, "2024-03-01T10:00:00Z", decoded["time"])
	assert.Equal(t, "hello", decoded["msg"])
}

func TestAdvertisedValuesAreAccepted(t *testing.T) {
	for _, level := range Levels {
		_, err := ParseLevel(level)
		assert.NoError(t, err, level)
	}
	for _, format := range Formats {
		_, err := NewFormatter(format)
		assert.NoError(t, err, format)
	}
}
