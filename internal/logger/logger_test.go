package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/TudorHulban/dayscheduler/internal/config"
)

func TestBuild(t *testing.T) {
	cfg, errLoad := config.Load("")
	require.NoError(t, errLoad)

	var out, errOut bytes.Buffer

	log, errBuild := Build(
		&ParamsBuild{
			Config: cfg.Logger,
			Out:    &out,
			Err:    &errOut,
		},
	)
	require.NoError(t, errBuild)
	require.Equal(t, zapcore.InfoLevel, log.Level())

	t.Run(
		"1. levels are split between outputs",
		func(t *testing.T) {
			log.Debug("hidden")
			log.Info("schedule ready")
			log.Error("schedule failed")

			require.NotContains(t, out.String(), "hidden")
			require.Contains(t, out.String(), "schedule ready")
			require.NotContains(t, out.String(), "schedule failed")
			require.Contains(t, errOut.String(), "schedule failed")
		},
	)

	t.Run(
		"2. level changes at runtime",
		func(t *testing.T) {
			require.NoError(t, log.SetLevel("debug"))
			require.Equal(t, zapcore.DebugLevel, log.Level())

			log.Debug("now visible")
			require.Contains(t, out.String(), "now visible")

			require.Error(t, log.SetLevel("loud"))
		},
	)

	t.Run(
		"3. bad initial level",
		func(t *testing.T) {
			_, errBuild := Build(
				&ParamsBuild{
					Config: &config.Logger{Level: "loud"},
				},
			)
			require.Error(t, errBuild)
		},
	)
}
