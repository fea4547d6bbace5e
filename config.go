package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"
)

const (
	backendPixel = "pixel"
	backendSDL   = "sdl"
)

// Config defines program configuration.
type Config struct {
	Rom         string // Path to the rom file to load.
	Scale       int    // Amount by which each pixel is scaled.
	IPS         int    // Instructions executed per second.
	Backend     string // Presentation backend, pixel or sdl.
	Debug       bool   // Log every executed instruction.
	Quiet       bool   // Only log errors.
	Seed        int64  // Seed of the random source, 0 seeds from the clock.
	HaltOnError bool   // Stop the machine on the first execution error.
}

// UsageError is returned for invalid command line arguments.
type UsageError struct {
	msg   string
	flags *flag.FlagSet
}

func (e *UsageError) Error() string { return e.msg }

// ShowUsage prints the flag documentation.
func (e *UsageError) ShowUsage() {
	e.flags.Usage()
}

// parseArgs parses command line arguments. The rom may be given with -rom or
// as the first positional argument.
func parseArgs(args []string, output io.Writer) (*Config, error) {
	c := Config{
		Scale:       SCALING_FACTOR,
		IPS:         500,
		Backend:     backendPixel,
		HaltOnError: true,
	}

	flags := flag.NewFlagSet("chip8emu", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprintf(output, "chip8emu [options] <rom file>\n")
		flags.PrintDefaults()
	}

	flags.StringVar(&c.Rom, "rom", c.Rom, "Path of the rom file to run.")
	flags.IntVar(&c.Scale, "scale", c.Scale, "Pixel scale factor for the display.")
	flags.IntVar(&c.IPS, "ips", c.IPS, "Instructions executed per second.")
	flags.StringVar(&c.Backend, "backend", c.Backend, "Presentation backend: pixel or sdl.")
	flags.BoolVar(&c.Debug, "debug", c.Debug, "Log every executed instruction.")
	flags.BoolVar(&c.Quiet, "quiet", c.Quiet, "Only log errors.")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "Seed for the random number generator, 0 uses the clock.")
	flags.BoolVar(&c.HaltOnError, "halt-on-error", c.HaltOnError, "Stop the machine on an execution error instead of skipping the instruction.")

	// parse failures have already been reported by the flag set
	if err := flags.Parse(args); err != nil {
		return &c, err
	}

	if c.Rom == "" && flags.NArg() > 0 {
		c.Rom = flags.Arg(0)
	}

	switch {
	case c.Rom == "":
		return &c, &UsageError{msg: "no rom file given", flags: flags}
	case c.Scale < 1:
		return &c, &UsageError{msg: fmt.Sprintf("invalid scale %d", c.Scale), flags: flags}
	case c.IPS < 1:
		return &c, &UsageError{msg: fmt.Sprintf("invalid instruction rate %d", c.IPS), flags: flags}
	case c.Backend != backendPixel && c.Backend != backendSDL:
		return &c, &UsageError{msg: fmt.Sprintf("unknown backend %q", c.Backend), flags: flags}
	}

	return &c, nil
}

// createLogger creates a logger with appropriate settings.
func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
