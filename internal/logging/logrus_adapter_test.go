package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newCapturedLogger() (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.JSONFormatter{})
	return NewLogrusAdapterFromLogger(l), buf
}

func TestLogrusAdapterLevels(t *testing.T) {
	log, buf := newCapturedLogger()

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestLogrusAdapterFields(t *testing.T) {
	log, buf := newCapturedLogger()

	log.Info("parsed statement", Field{Key: "count", Value: 3})

	assert.Contains(t, buf.String(), `"count":3`)
}

func TestLogrusAdapterWithField(t *testing.T) {
	log, buf := newCapturedLogger()

	log.WithField("file", "statement.xml").Info("loaded")

	assert.Contains(t, buf.String(), `"file":"statement.xml"`)
}

func TestNewLogrusAdapterInvalidLevel(t *testing.T) {
	// An unknown level falls back to info instead of failing.
	log := NewLogrusAdapter("nonsense", "text")
	assert.NotNil(t, log)
}
