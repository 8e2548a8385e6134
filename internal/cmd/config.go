// Copyright 2026 The qoedist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hossfeld/approx-qoe-distribution/internal/scale"
)

const (
	envVarPrefix = "QOEDIST"

	configFlag   = "config"
	lowFlag      = "low"
	highFlag     = "high"
	stepFlag     = "step"
	outputFlag   = "output"
	logLevelFlag = "log-level"

	// configFile is looked up relative to the XDG config directories.
	configFile = "qoedist/config.yaml"
)

var validate = validator.New()

// Config holds the settings shared by all commands. Each field can be
// set by flag, by QOEDIST_* environment variable or in the config
// file, in decreasing order of precedence.
type Config struct {
	Low      float64 `mapstructure:"low"`
	High     float64 `mapstructure:"high" validate:"gtfield=Low"`
	Step     float64 `mapstructure:"step" validate:"gte=0"`
	Output   string  `mapstructure:"output" validate:"oneof=text yaml"`
	LogLevel string  `mapstructure:"log-level" validate:"oneof=debug info warn error"`
}

// Scale returns the rating scale described by c.
func (c Config) Scale() scale.Rating {
	return scale.Rating{Low: c.Low, High: c.High, Step: c.Step}
}

func addConfigFlags(fs *pflag.FlagSet) {
	fs.String(configFlag, "", "config file (default $XDG_CONFIG_HOME/"+configFile+")")
	fs.Float64(lowFlag, scale.FivePoint.Low, "lowest rating of the scale")
	fs.Float64(highFlag, scale.FivePoint.High, "highest rating of the scale")
	fs.Float64(stepFlag, scale.FivePoint.Step, "spacing of the discrete rating points")
	fs.StringP(outputFlag, "o", "text", "output format: text or yaml")
	fs.String(logLevelFlag, "warn", "log level: debug, info, warn or error")
}

func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envVarPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}

// loadConfig reads the config file, if any, and returns the validated
// configuration.
func loadConfig(v *viper.Viper) (Config, error) {
	path := v.GetString(configFlag)
	if path == "" {
		// A missing default config file is not an error.
		path, _ = xdg.SearchConfigFile(configFile)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := validate.Struct(c); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return c, nil
}
