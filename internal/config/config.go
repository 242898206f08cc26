// Package config loads settings from defaults, an optional YAML file and
// FIXEDINCOME_* environment variables, in increasing precedence.
package config

import (
	"benritz/fixedincome/internal/bond"
	"benritz/fixedincome/internal/calendar"
	"benritz/fixedincome/internal/cashflow"
	"benritz/fixedincome/internal/daycount"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "FIXEDINCOME"

type Config struct {
	Log     LogConfig     `mapstructure:"log"     yaml:"log"`
	Pricing PricingConfig `mapstructure:"pricing" yaml:"pricing"`
	Yield   YieldConfig   `mapstructure:"yield"   yaml:"yield"`
	Collect CollectConfig `mapstructure:"collect" yaml:"collect"`
	AWS     AWSConfig     `mapstructure:"aws"     yaml:"aws"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// PricingConfig holds the default conventions for bonds built from flags.
type PricingConfig struct {
	Calendar     string `mapstructure:"calendar"      yaml:"calendar"`
	DayCount     string `mapstructure:"day_count"     yaml:"day_count"`
	Adjustment   string `mapstructure:"adjustment"    yaml:"adjustment"`
	InterestType string `mapstructure:"interest_type" yaml:"interest_type"`
}

type YieldConfig struct {
	Tolerance     float64 `mapstructure:"tolerance"      yaml:"tolerance"`
	MaxIterations int     `mapstructure:"max_iterations" yaml:"max_iterations"`
}

type CollectConfig struct {
	Source  string `mapstructure:"source"  yaml:"source"` // "dmo" or "dividenddata"
	Workers int    `mapstructure:"workers" yaml:"workers"`
}

type AWSConfig struct {
	Profile string `mapstructure:"profile" yaml:"profile"`
	Bucket  string `mapstructure:"bucket"  yaml:"bucket"`
	Prefix  string `mapstructure:"prefix"  yaml:"prefix"`
}

// Pricing is PricingConfig with every convention parsed.
type Pricing struct {
	Calendar     calendar.Calendar
	DayCount     daycount.Convention
	Adjustment   calendar.Adjustment
	InterestType cashflow.InterestType
}

func (p PricingConfig) Resolve() (Pricing, error) {
	var (
		out Pricing
		err error
	)

	if out.Calendar, err = calendar.ParseCalendar(p.Calendar); err != nil {
		return Pricing{}, err
	}
	if out.DayCount, err = daycount.ParseConvention(p.DayCount); err != nil {
		return Pricing{}, err
	}
	if out.Adjustment, err = calendar.ParseAdjustment(p.Adjustment); err != nil {
		return Pricing{}, err
	}
	if out.InterestType, err = cashflow.ParseInterestType(p.InterestType); err != nil {
		return Pricing{}, err
	}

	return out, nil
}

func (y YieldConfig) SolverOptions() bond.SolverOptions {
	return bond.SolverOptions{
		Tolerance:     y.Tolerance,
		MaxIterations: y.MaxIterations,
	}
}

// New returns a viper instance with defaults and environment binding set,
// ready for command flags to be bound before Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path, or when path is empty searches ./config.yaml and
// ~/.fixedincome/config.yaml. A missing file in the search path is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".fixedincome"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.Yield.MaxIterations <= 0 {
		return nil, fmt.Errorf("yield.max_iterations must be positive, got %d", cfg.Yield.MaxIterations)
	}

	if cfg.Collect.Workers <= 0 {
		return nil, fmt.Errorf("collect.workers must be positive, got %d", cfg.Collect.Workers)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("pricing.calendar", "uk")
	v.SetDefault("pricing.day_count", "30/360")
	v.SetDefault("pricing.adjustment", "following")
	v.SetDefault("pricing.interest_type", "compound")

	v.SetDefault("yield.tolerance", bond.DefaultSolverOptions.Tolerance)
	v.SetDefault("yield.max_iterations", bond.DefaultSolverOptions.MaxIterations)

	v.SetDefault("collect.source", "dmo")
	v.SetDefault("collect.workers", 4)

	v.SetDefault("aws.profile", "default")
	v.SetDefault("aws.bucket", "")
	v.SetDefault("aws.prefix", "")
}
