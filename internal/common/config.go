package common

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Extract ExtractConfig `mapstructure:"extract"`
	Review  ReviewConfig  `mapstructure:"review"`
	Output  OutputConfig  `mapstructure:"output"`
	Watch   WatchConfig   `mapstructure:"watch"`
	Vision  VisionConfig  `mapstructure:"vision"`
}

// LogConfig selects the slog handler
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // text | json
}

// BatchConfig bounds ProcessBatch parallelism
type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

type ExtractConfig struct {
	TextTrackingFallback bool `mapstructure:"text_tracking_fallback"`
}

type ReviewConfig struct {
	MinConfidence float64 `mapstructure:"min_confidence"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"` // yaml | json
}

// WatchConfig holds watch-mode settings
type WatchConfig struct {
	Debounce  time.Duration `mapstructure:"debounce"`
	OutputDir string        `mapstructure:"output_dir"`
	Workers   int           `mapstructure:"workers"`
	QueueSize int           `mapstructure:"queue_size"`
}

type VisionConfig struct {
	ValidateSchema bool `mapstructure:"validate_schema"`
}

// EnvPrefix is prepended to every environment override, e.g.
// LABELINTAKE_REVIEW_MIN_CONFIDENCE.
const EnvPrefix = "LABELINTAKE"

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("batch.workers", 4)
	v.SetDefault("extract.text_tracking_fallback", false)
	v.SetDefault("review.min_confidence", 0.6)
	v.SetDefault("output.format", "yaml")
	v.SetDefault("watch.debounce", 500*time.Millisecond)
	v.SetDefault("watch.output_dir", "")
	v.SetDefault("watch.workers", 2)
	v.SetDefault("watch.queue_size", 64)
	v.SetDefault("vision.validate_schema", true)
}

// LoadConfig reads defaults, then the optional config file, then
// LABELINTAKE_* environment variables. An empty cfgFile looks for
// label-intake.yaml in the working directory and $HOME/.label-intake; a
// missing file is not an error.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("label-intake")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.label-intake")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, WrapError(err, "read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, WrapError(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	v := NewValidator().
		Field("log.level", c.Log.Level, OneOf("debug", "info", "warn", "error")).
		Field("log.format", c.Log.Format, OneOf("text", "json")).
		Field("output.format", c.Output.Format, OneOf("yaml", "json")).
		Field("batch.workers", c.Batch.Workers, Positive).
		Field("watch.workers", c.Watch.Workers, Positive).
		Field("watch.queue_size", c.Watch.QueueSize, Positive).
		Field("review.min_confidence", c.Review.MinConfidence, Fraction)
	if v.HasErrors() {
		return NewAppError("CONFIG_ERROR", v.ErrorMessage(), ErrValidation)
	}
	return nil
}
