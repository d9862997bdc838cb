package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

const squareJSON = `{"name":"square","points":[{"x":"0","y":"0"},{"x":"2","y":"2"}],"tags":{"sides":4},"origin":{"x":1,"y":1}}`

func TestTranscodeRoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml", "msgpack", "protobuf"} {
		var mid bytes.Buffer
		require.NoError(t, transcode(strings.NewReader(squareJSON), &mid, "json", format), format)

		var back bytes.Buffer
		require.NoError(t, transcode(&mid, &back, format, "json"), format)
		assert.JSONEq(t, squareJSON, back.String(), format)
	}
}

func TestTranscodeUnknownFormat(t *testing.T) {
	err := transcode(strings.NewReader(squareJSON), &bytes.Buffer{}, "json", "xml")
	assert.ErrorContains(t, err, `unknown format "xml"`)
}

func TestTranscodeBadInput(t *testing.T) {
	err := transcode(strings.NewReader(`{"name":"x"}`), &bytes.Buffer{}, "json", "yaml")
	assert.ErrorContains(t, err, "decode json")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcode.toml")
	content := "from = \"yaml\"\nto = \"msgpack\"\nmax_decode_size = 1024\nverbose = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{From: "yaml", To: "msgpack", MaxDecodeSize: 1024, Verbose: true}, cfg)

	cfg, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsNegativeLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcode.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_decode_size = -1\n"), 0o600))

	_, err := loadConfig(path)
	assert.ErrorContains(t, err, "max_decode_size")
}

func TestApplyFlags(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range []cli.Flag{from, to, in, out, configFile, verbose} {
		f.Apply(set)
	}
	require.NoError(t, set.Parse([]string{"--to", "json"}))
	ctx := cli.NewContext(cli.NewApp(), set, nil)

	cfg := &Config{From: "yaml", To: "msgpack"}
	applyFlags(ctx, cfg)
	assert.Equal(t, "yaml", cfg.From)
	assert.Equal(t, "json", cfg.To)

	cfg = &Config{}
	applyFlags(ctx, cfg)
	assert.Equal(t, "json", cfg.From)
	assert.Equal(t, "json", cfg.To)
	assert.Equal(t, "", cfg.In)
}
