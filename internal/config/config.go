// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads nv12tool settings with viper.
//
// Precedence, lowest to highest: defaults, config file, NV12_* environment
// variables, command-line flags.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-nv12/nv12"
)

// EnvPrefix is prepended to every environment variable, e.g. NV12_WIDTH.
const EnvPrefix = "NV12"

// Config is the resolved tool configuration.
type Config struct {
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
	SrcStride int     `mapstructure:"src_stride"` // 0 means tightly packed
	DstStride int     `mapstructure:"dst_stride"`
	Workers   int     `mapstructure:"workers"` // 0 runs every kernel serially
	NoSIMD    bool    `mapstructure:"no_simd"`
	JSON      bool    `mapstructure:"json"`
	Verbosity int     `mapstructure:"verbose"`
	Frames    int     `mapstructure:"frames"`
	FPS       float64 `mapstructure:"fps"` // 0 runs unpaced
	VideoLog  string  `mapstructure:"video_log"`
}

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"src-stride": "src_stride",
	"dst-stride": "dst_stride",
	"no-simd":    "no_simd",
	"video-log":  "video_log",
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// SetDefaults configures default values for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("width", 1920)
	v.SetDefault("height", 1080)
	v.SetDefault("src_stride", 0)
	v.SetDefault("dst_stride", 0)
	v.SetDefault("workers", 0)
	v.SetDefault("no_simd", false)
	v.SetDefault("json", false)
	v.SetDefault("verbose", 0)
	v.SetDefault("frames", 120)
	v.SetDefault("fps", 0)
	v.SetDefault("video_log", "")
}

// BindFlags binds every flag in fs that names a config key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			key = f.Name
		}
		if !isKey(key) {
			return
		}
		if bindErr := v.BindPFlag(key, f); bindErr != nil && err == nil {
			err = errors.Wrapf(bindErr, "bind flag --%s", f.Name)
		}
	})
	return err
}

func isKey(key string) bool {
	switch key {
	case "width", "height", "src_stride", "dst_stride", "workers",
		"no_simd", "json", "verbose", "frames", "fps", "video_log":
		return true
	}
	return false
}

// Load reads the optional config file at path, then unmarshals and
// validates the merged settings.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the kernels depend on.
func (c *Config) Validate() error {
	g, err := nv12.NewGeometry(c.Width, c.Height)
	if err != nil {
		return errors.Wrap(err, "config")
	}
	if c.SrcStride != 0 && c.SrcStride < g.Width {
		return errors.Newf("src_stride must be 0 or >= width %d, got %d", g.Width, c.SrcStride)
	}
	if c.DstStride != 0 && c.DstStride < g.Width {
		return errors.Newf("dst_stride must be 0 or >= width %d, got %d", g.Width, c.DstStride)
	}
	if c.Workers < 0 {
		return errors.Newf("workers must be >= 0, got %d", c.Workers)
	}
	if c.Frames <= 0 {
		return errors.Newf("frames must be > 0, got %d", c.Frames)
	}
	if c.FPS < 0 {
		return errors.Newf("fps must be >= 0, got %g", c.FPS)
	}
	return nil
}

// Geometry returns the configured frame geometry.
func (c *Config) Geometry() nv12.Geometry {
	return nv12.Geometry{Width: c.Width, Height: c.Height}
}
