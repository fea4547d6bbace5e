package main

import (
	"flag"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gopxl/pixel/v2/backends/opengl"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"

	"chip8emu/chip8"
)

const frameRate = 60

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			createLogger(false, false).Error(usageErr.Error())
			usageErr.ShowUsage()
		}
		os.Exit(1)
	}

	logger := createLogger(cfg.Debug, cfg.Quiet)
	title := "CHIP8 Emulator - " + filepath.Base(cfg.Rom)

	if cfg.Backend == backendSDL {
		err = run(cfg, logger, func() (frontend, error) {
			return newSDLFrontend(title, cfg.Scale)
		})
	} else {
		opengl.Run(func() {
			err = run(cfg, logger, func() (frontend, error) {
				return newPixelFrontend(title, cfg.Scale)
			})
		})
	}

	if err != nil {
		logger.Fatal(err.Error())
	}
}

// machineOptions builds the interpreter options for the configuration.
func machineOptions(cfg *Config, logger *log.Logger) []chip8.Option {
	opts := []chip8.Option{
		chip8.WithLogger(logger),
		chip8.WithSoundStop(func() {
			logger.Debug("Sound timer expired")
		}),
	}

	if cfg.Seed != 0 {
		opts = append(opts, chip8.WithRand(rand.New(rand.NewSource(cfg.Seed))))
	}

	if cfg.Debug {
		opts = append(opts, chip8.WithTrace(func(pc uint16, ins chip8.Instruction) {
			logger.Debug("Executing",
				log.Hex("pc", pc),
				log.Hex("opcode", ins.Raw),
				log.String("instruction", ins.String()))
		}))
	}
	return opts
}

// run drives the machine until the window is closed or execution halts.
func run(cfg *Config, logger *log.Logger, newFrontend func() (frontend, error)) error {
	fe, err := newFrontend()
	if err != nil {
		return errors.Wrap(err, "opening window")
	}
	defer fe.Close()

	display := chip8.NewDisplay()
	keypad := chip8.NewKeypad()
	c := chip8.NewChip8(display, keypad, machineOptions(cfg, logger)...)
	c.LoadFont()
	if err := LoadRomFile(c, cfg.Rom); err != nil {
		return err
	}

	scheduler := NewScheduler(c, cfg.IPS)
	frameDuration := time.Second / frameRate
	last := time.Now()

	for !fe.Closed() {
		start := time.Now()
		fe.PollInput(keypad)

		if err := scheduler.Advance(start.Sub(last)); err != nil {
			if cfg.HaltOnError {
				return err
			}
			logger.Error("Execution failed, skipping instruction", log.Err(err))
			skipFailedInstruction(c, err)
		}
		last = start

		fe.Render(display)

		elapsed := time.Since(start)
		if remaining := frameDuration - elapsed; remaining > 0 {
			time.Sleep(remaining)
		}
	}

	return nil
}

// skipFailedInstruction moves the program counter past the instruction that
// caused err.
func skipFailedInstruction(c *chip8.Chip8, err error) {
	var execErr *chip8.ExecError
	if errors.As(err, &execErr) {
		c.PositionProgramCounter(execErr.PC + 2)
	}
}
