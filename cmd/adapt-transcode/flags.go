package main

import "github.com/urfave/cli"

var (
	// from is the format of the input document
	from = cli.StringFlag{
		Name:  "from",
		Usage: "Format of the input: json, yaml, msgpack or protobuf",
		Value: "json",
	}
	// to is the format of the output document
	to = cli.StringFlag{
		Name:  "to",
		Usage: "Format of the output: json, yaml, msgpack or protobuf",
		Value: "yaml",
	}
	// in is the input file
	in = cli.StringFlag{
		Name:  "in",
		Usage: "Input file, stdin when empty",
	}
	// out is the output file
	out = cli.StringFlag{
		Name:  "out",
		Usage: "Output file, stdout when empty",
	}
	// configFile is an optional TOML file holding defaults for the flags above
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "TOML file with default settings",
	}
	// verbose enables development logging
	verbose = cli.BoolFlag{
		Name:  "verbose",
		Usage: "Log decode failures and other details to stderr",
	}
)
