// Package config loads the optional geometriq.yaml settings file. Every key
// has a usable default, so the CLI runs with no file at all; set keys override
// defaults and GEOMETRIQ_* environment variables override both.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DB        DBConfig        `mapstructure:"db"`
	Output    OutputConfig    `mapstructure:"output"`
	Render    RenderConfig    `mapstructure:"render"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Review    ReviewConfig    `mapstructure:"review"`
	Worksheet WorksheetConfig `mapstructure:"worksheet"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type DBConfig struct {
	// Path of the question bank database. Empty picks the per-user
	// default location.
	Path string `mapstructure:"path"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

type RenderConfig struct {
	ImageSize int `mapstructure:"image_size"`
}

type LLMConfig struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
}

type ReviewConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
	Concurrency       int     `mapstructure:"concurrency"`
}

type WorksheetConfig struct {
	PerShape int    `mapstructure:"per_shape"`
	Total    int    `mapstructure:"total"`
	Title    string `mapstructure:"title"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

// Load reads geometriq.yaml from dir, falling back to the working directory
// when dir is empty. A missing file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("geometriq")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	} else {
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("GEOMETRIQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.path", "")
	v.SetDefault("output.dir", "questions")
	v.SetDefault("render.image_size", 375)
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("review.requests_per_second", 2.0)
	v.SetDefault("review.burst", 2)
	v.SetDefault("review.concurrency", 4)
	v.SetDefault("worksheet.per_shape", 4)
	v.SetDefault("worksheet.total", 50)
	v.SetDefault("worksheet.title", "Geometry Practice")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.console", true)
}
