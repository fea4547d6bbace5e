package main

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parseArgs([]string{"pong.ch8"}, &bytes.Buffer{})
	assert.NoError(t, err)

	assert.Equal(t, "pong.ch8", cfg.Rom)
	assert.Equal(t, SCALING_FACTOR, cfg.Scale)
	assert.Equal(t, 500, cfg.IPS)
	assert.Equal(t, backendPixel, cfg.Backend)
	assert.True(t, cfg.HaltOnError)
	assert.False(t, cfg.Debug)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestParseArgsFlags(t *testing.T) {
	args := []string{"-rom", "a.ch8", "-scale", "4", "-ips", "700", "-backend", "sdl",
		"-debug", "-seed", "42", "-halt-on-error=false"}
	cfg, err := parseArgs(args, &bytes.Buffer{})
	assert.NoError(t, err)

	assert.Equal(t, "a.ch8", cfg.Rom)
	assert.Equal(t, 4, cfg.Scale)
	assert.Equal(t, 700, cfg.IPS)
	assert.Equal(t, backendSDL, cfg.Backend)
	assert.True(t, cfg.Debug)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.False(t, cfg.HaltOnError)
}

func TestParseArgsInvalid(t *testing.T) {
	tests := [][]string{
		{},
		{"-scale", "0", "a.ch8"},
		{"-ips", "-1", "a.ch8"},
		{"-backend", "vulkan", "a.ch8"},
	}

	for _, args := range tests {
		_, err := parseArgs(args, &bytes.Buffer{})
		var usageErr *UsageError
		assert.True(t, errors.As(err, &usageErr))
	}
}

func TestParseArgsHelp(t *testing.T) {
	out := &bytes.Buffer{}
	_, err := parseArgs([]string{"-h"}, out)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.True(t, strings.Contains(out.String(), "rom file"))
}
