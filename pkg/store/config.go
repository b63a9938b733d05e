package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is where habits are kept when no config overrides it.
	DefaultPath = "~/.habitflow"
	// DefaultResetPeriod is the interval between recurring resets.
	DefaultResetPeriod = "1d"
)

// Config describes where and how habits are stored.
type Config interface {
	BasePath() string
	ResetPeriod() string
}

// LoadConfig reads .habitflow.yaml from HABITFLOW_CONFIG_PATH or the working
// directory, falling back to defaults. HABITFLOW_PATH and
// HABITFLOW_RESET_PERIOD override the file.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("reset.period", DefaultResetPeriod)
	v.SetConfigName(".habitflow") // .yaml is implicit
	v.SetEnvPrefix("HABITFLOW")
	v.AutomaticEnv()
	_ = v.BindEnv("reset.period", "HABITFLOW_RESET_PERIOD")

	if override := os.Getenv("HABITFLOW_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path, Period: v.GetString("reset.period")}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Period string `json:"resetPeriod"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) ResetPeriod() string {
	return f.Period
}

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path   string
	Period string
}

func (s StaticConfig) BasePath() string {
	return s.Path
}

func (s StaticConfig) ResetPeriod() string {
	if s.Period == "" {
		return DefaultResetPeriod
	}
	return s.Period
}
