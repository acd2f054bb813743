package main

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/fft"
)

// Config is the resolved CLI configuration: defaults, then the config
// file, then DFTCALC_* environment variables, then flags.
type Config struct {
	Precision int           `mapstructure:"precision" yaml:"precision"`
	Output    string        `mapstructure:"output" yaml:"output"`
	LogLevel  string        `mapstructure:"log_level" yaml:"log_level"`
	Workers   int           `mapstructure:"workers" yaml:"workers"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Kernel    string        `mapstructure:"kernel" yaml:"kernel"`
}

const envPrefix = "DFTCALC"

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("precision", core.DefaultPrecision)
	v.SetDefault("output", formatTable)
	v.SetDefault("log_level", "warn")
	v.SetDefault("workers", runtime.GOMAXPROCS(0))
	v.SetDefault("timeout", "30s")
	v.SetDefault("kernel", "radix2")
}

// loadConfig decodes and validates the configuration held by v.
func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Precision = int(core.Clamp(float64(cfg.Precision), 0, core.MaxPrecision))

	cfg.Output = strings.ToLower(cfg.Output)
	switch cfg.Output {
	case formatTable, formatJSON, formatYAML:
	default:
		return Config{}, fmt.Errorf("unknown output format %q (table, json, yaml)", cfg.Output)
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}
	if _, err := kernelByName(cfg.Kernel); err != nil {
		return Config{}, err
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("workers must be >= 1, got %d", cfg.Workers)
	}
	return cfg, nil
}

func kernelByName(name string) (core.Kernel, error) {
	switch strings.ToLower(name) {
	case "radix2", "":
		return fft.Radix2(), nil
	case "planned":
		return fft.Planned(), nil
	default:
		return nil, fmt.Errorf("unknown FFT kernel %q (radix2, planned)", name)
	}
}

// engineOptions returns the engine defaults the config implies.
func (c Config) engineOptions() []core.Option {
	k, _ := kernelByName(c.Kernel)
	return []core.Option{core.WithPrecision(c.Precision), core.WithKernel(k)}
}
