package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/RobertWHurst/adapt"
)

func main() {
	app := cli.NewApp()
	app.Name = "adapt-transcode"
	app.Version = "v0.1.0"
	app.Usage = "Converts a shape document between json, yaml, msgpack and protobuf"
	app.Flags = []cli.Flag{from, to, in, out, configFile, verbose}
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx.String(configFile.Name))
	if err != nil {
		return err
	}
	applyFlags(ctx, cfg)

	if cfg.Verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()
		adapt.SetLogger(logger)
	}
	if cfg.MaxDecodeSize > 0 {
		adapt.MaxDecodeSize = cfg.MaxDecodeSize
	}

	var r io.Reader = os.Stdin
	if cfg.In != "" {
		f, err := os.Open(cfg.In)
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	}

	var w io.Writer = os.Stdout
	if cfg.Out != "" {
		f, err := os.Create(cfg.Out)
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()
		w = f
	}

	return transcode(r, w, cfg.From, cfg.To)
}
