package main

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Config holds the settings of a transcode run. Values given on the
// command line win over the ones read from the config file.
type Config struct {
	From          string `toml:"from"`
	To            string `toml:"to"`
	In            string `toml:"in"`
	Out           string `toml:"out"`
	MaxDecodeSize int64  `toml:"max_decode_size"`
	Verbose       bool   `toml:"verbose"`
}

// loadConfig opens and decodes a toml file
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	if cfg.MaxDecodeSize < 0 {
		return nil, errors.Errorf("max_decode_size must not be negative, got %d", cfg.MaxDecodeSize)
	}
	return cfg, nil
}

// applyFlags copies the flags set on ctx over cfg and fills the remaining
// gaps with the flag defaults.
func applyFlags(ctx *cli.Context, cfg *Config) {
	str := func(flag cli.StringFlag, dst *string) {
		if ctx.IsSet(flag.Name) || *dst == "" {
			*dst = ctx.String(flag.Name)
		}
	}
	str(from, &cfg.From)
	str(to, &cfg.To)
	str(in, &cfg.In)
	str(out, &cfg.Out)
	if ctx.IsSet(verbose.Name) {
		cfg.Verbose = ctx.Bool(verbose.Name)
	}
}
