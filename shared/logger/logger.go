package logger

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tzconv/config"
	"tzconv/shared/constant"
)

// InitLogger routes logs to stderr so stdout carries only conversion output.
func InitLogger() {
	InitLoggerWithWriter(os.Stderr)
}

func InitLoggerWithWriter(w io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output).With().Str(constant.LogFieldRunID, uuid.NewString()).Logger()
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.App.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
		log.Trace().Str("loglevel", level.String()).Msg("No usable log level configured, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// Raise makes logging more verbose by steps levels, stopping at trace.
func Raise(steps int) {
	if steps <= 0 {
		return
	}

	level := zerolog.GlobalLevel() - zerolog.Level(steps)
	if level < zerolog.TraceLevel {
		level = zerolog.TraceLevel
	}

	zerolog.SetGlobalLevel(level)
}
