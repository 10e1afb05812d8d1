package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tzconv/config"
	"tzconv/shared/logger"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	}()

	logger.InitLogger()

	if zerolog.TimeFieldFormat != zerolog.TimeFormatUnix {
		t.Errorf("expected TimeFieldFormat to be %s, got %s", zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	}

	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("expected global level to be %s, got %s", zerolog.WarnLevel, zerolog.GlobalLevel())
	}
}

func TestInitLoggerWithWriter_TagsRunID(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	}()

	var buf bytes.Buffer
	logger.InitLoggerWithWriter(&buf)

	log.Warn().Msg("catalog fallback")

	if !bytes.Contains(buf.Bytes(), []byte("catalog fallback")) {
		t.Errorf("expected warning in output, got %q", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("run_id")) {
		t.Errorf("expected run_id field in output, got %q", buf.String())
	}
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("test error"))

	if buf.Len() == 0 {
		t.Error("expected error log output, got empty string")
	}

	if !bytes.Contains(buf.Bytes(), []byte("test error")) {
		t.Error("expected log output to contain 'test error'")
	}
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{
			name:          "trace level",
			logLevel:      "trace",
			expectedLevel: zerolog.TraceLevel,
		},
		{
			name:          "debug level",
			logLevel:      "debug",
			expectedLevel: zerolog.DebugLevel,
		},
		{
			name:          "info level",
			logLevel:      "info",
			expectedLevel: zerolog.InfoLevel,
		},
		{
			name:          "error level",
			logLevel:      "error",
			expectedLevel: zerolog.ErrorLevel,
		},
		{
			name:          "disabled level",
			logLevel:      "disabled",
			expectedLevel: zerolog.Disabled,
		},
		{
			name:          "invalid level defaults to warn",
			logLevel:      "invalid_level",
			expectedLevel: zerolog.WarnLevel,
		},
		{
			name:          "empty level defaults to warn",
			logLevel:      "",
			expectedLevel: zerolog.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalLogger := log.Logger
			originalLevel := zerolog.GlobalLevel()
			var buf bytes.Buffer
			log.Logger = log.Output(&buf)

			cfg := &config.Config{}
			cfg.App.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			if zerolog.GlobalLevel() != tt.expectedLevel {
				t.Errorf("expected global level to be %s, got %s", tt.expectedLevel, zerolog.GlobalLevel())
			}

			log.Logger = originalLogger
			zerolog.SetGlobalLevel(originalLevel)
		})
	}
}

func TestRaise(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name     string
		start    zerolog.Level
		steps    int
		expected zerolog.Level
	}{
		{"no steps", zerolog.WarnLevel, 0, zerolog.WarnLevel},
		{"negative steps", zerolog.WarnLevel, -1, zerolog.WarnLevel},
		{"one step", zerolog.WarnLevel, 1, zerolog.InfoLevel},
		{"two steps", zerolog.WarnLevel, 2, zerolog.DebugLevel},
		{"clamped at trace", zerolog.WarnLevel, 10, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zerolog.SetGlobalLevel(tt.start)

			logger.Raise(tt.steps)

			if zerolog.GlobalLevel() != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, zerolog.GlobalLevel())
			}
		})
	}
}
