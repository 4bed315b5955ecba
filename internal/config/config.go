// Package config loads the application settings from an optional YAML file,
// DAYSCHEDULER_* environment variables and built-in defaults, in that precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	_envPrefix         = "DAYSCHEDULER"
	_defaultConfigName = "dayscheduler"

	FormatTable = "table"
	FormatCSV   = "csv"
)

// AppConfig groups every section of the configuration file.
type (
	AppConfig struct {
		App      *App      `mapstructure:"app"`
		Logger   *Logger   `mapstructure:"logger"`
		Planning *Planning `mapstructure:"planning"`
		Input    *Input    `mapstructure:"input"`
		Output   *Output   `mapstructure:"output"`
		Store    *Store    `mapstructure:"store"`
	}

	App struct {
		Name string `mapstructure:"name"`
		Env  string `mapstructure:"env"`
	}

	Logger struct {
		Level             string                `mapstructure:"level"`
		Development       bool                  `mapstructure:"development"`
		DisableStacktrace bool                  `mapstructure:"disableStacktrace"`
		Encoding          string                `mapstructure:"encoding"`
		EncoderConfig     zapcore.EncoderConfig `mapstructure:"encoderConfig"`
	}

	// Planning holds the scheduling knobs.
	Planning struct {
		MaximumDay int `mapstructure:"maximumDay"`

		// QCMergeDepartments are folded into the single QC duration before scheduling.
		QCMergeDepartments []string `mapstructure:"qcMergeDepartments"`
	}

	Input struct {
		PlanFile  string `mapstructure:"planFile"`
		RulesFile string `mapstructure:"rulesFile"`
	}

	Output struct {
		Format string `mapstructure:"format" valid:"required,in(table|csv)"`
		Path   string `mapstructure:"path"`
	}

	Store struct {
		Enabled bool   `mapstructure:"enabled"`
		Path    string `mapstructure:"path"`
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "dayscheduler")
	v.SetDefault("app.env", "local")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.development", false)
	v.SetDefault("logger.disableStacktrace", true)
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.encoderConfig.messageKey", "msg")
	v.SetDefault("logger.encoderConfig.levelKey", "level")
	v.SetDefault("logger.encoderConfig.timeKey", "ts")
	v.SetDefault("logger.encoderConfig.nameKey", "logger")
	v.SetDefault("logger.encoderConfig.callerKey", "caller")
	v.SetDefault("logger.encoderConfig.stacktraceKey", "stacktrace")

	v.SetDefault("planning.maximumDay", 3650)
	v.SetDefault("planning.qcMergeDepartments", []string{"QC Creation", "QC execution"})

	v.SetDefault("input.planFile", "plan.yaml")
	v.SetDefault("input.rulesFile", "")

	v.SetDefault("output.format", FormatTable)
	v.SetDefault("output.path", "")

	v.SetDefault("store.enabled", false)
	v.SetDefault("store.path", "dayscheduler.db")
}

// addZapEncoderConfig fills encoder config with zapcore types.
func addZapEncoderConfig(cfg *zapcore.EncoderConfig) {
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.SecondsDurationEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.EncodeName = func(s string, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString("[" + s + "]")
	}
}

// Load reads the configuration.
// With an empty path it looks for dayscheduler.yaml in the working directory
// and falls back to defaults when there is none.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(path) > 0 {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(_defaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if errRead := v.ReadInConfig(); errRead != nil {
		var errNotFound viper.ConfigFileNotFoundError

		if len(path) > 0 || !errors.As(errRead, &errNotFound) {
			return nil,
				fmt.Errorf("error reading config file: %w", errRead)
		}
	}

	var result AppConfig

	if errUnmarshal := v.Unmarshal(&result); errUnmarshal != nil {
		return nil,
			fmt.Errorf("unable to decode into struct: %w", errUnmarshal)
	}

	if errValidation := result.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	addZapEncoderConfig(&result.Logger.EncoderConfig)

	return &result,
		nil
}

func (cfg *AppConfig) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(cfg.Output); errValidation != nil {
		return goerrors.ErrServiceValidation{
			ServiceName: "Config",
			Caller:      "Load",
			Issue:       errValidation,
		}
	}

	if cfg.Planning.MaximumDay < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - AppConfig",
			Issue: goerrors.ErrNegativeInput{
				InputName: "planning.maximumDay",
			},
		}
	}

	if _, errLevel := zapcore.ParseLevel(cfg.Logger.Level); errLevel != nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - AppConfig",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "logger.level",
				InputValue: cfg.Logger.Level,
				Issue:      errLevel,
			},
		}
	}

	return nil
}
