// Package logger builds the zap logger used by the command line application.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/TudorHulban/dayscheduler/internal/config"
)

// Logger wraps the zap logger together with its adjustable level.
type Logger struct {
	*zap.Logger

	atomicLevel zap.AtomicLevel
}

type ParamsBuild struct {
	Config *config.Logger

	// Out and Err default to stdout and stderr.
	Out io.Writer
	Err io.Writer
}

// Build sets up the base logger: info and below go to Out, errors to Err.
func Build(params *ParamsBuild) (*Logger, error) {
	atomicLevel, errParse := zap.ParseAtomicLevel(params.Config.Level)
	if errParse != nil {
		return nil,
			fmt.Errorf("couldn't parse initial atomic level at logger build: %w", errParse)
	}

	encoder := zapcore.NewJSONEncoder(params.Config.EncoderConfig)
	if params.Config.Encoding == "console" {
		encoder = zapcore.NewConsoleEncoder(params.Config.EncoderConfig)
	}

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return atomicLevel.Enabled(lvl) && lvl < zapcore.ErrorLevel
	})

	out := zapcore.AddSync(writerOr(params.Out, os.Stdout))
	errOut := zapcore.AddSync(writerOr(params.Err, os.Stderr))

	options := []zap.Option{zap.AddCaller()}

	if params.Config.Development {
		options = append(options, zap.Development())
	}

	if !params.Config.DisableStacktrace {
		options = append(options, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return &Logger{
			Logger: zap.New(
				zapcore.NewTee(
					zapcore.NewCore(encoder, out, lowPriority),
					zapcore.NewCore(encoder, errOut, highPriority),
				),
				options...,
			),

			atomicLevel: atomicLevel,
		},
		nil
}

// SetLevel changes logger level dynamically.
func (l *Logger) SetLevel(level string) error {
	lvl, errParse := zapcore.ParseLevel(level)
	if errParse != nil {
		return fmt.Errorf("couldn't parse level: %w", errParse)
	}

	l.atomicLevel.SetLevel(lvl)

	l.Debug("Atomic level updated", zap.String("value", level))

	return nil
}

func (l *Logger) Level() zapcore.Level {
	return l.atomicLevel.Level()
}

func writerOr(w io.Writer, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}

	return w
}
