// Package config resolves runtime settings from defaults, a .env file, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/olivier-w/boing/internal/input"
	"github.com/olivier-w/boing/internal/media"
)

const (
	DefaultFPS = 60
	maxFPS     = 240

	envPrefix = "BOING_"
)

// Config holds everything main needs to start the toy.
type Config struct {
	// Asset is the boing sound file. Empty means the built-in sound.
	Asset      string
	Window     bool
	Mute       bool
	FPS        int
	HoldWindow time.Duration
	LogFile    string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		FPS:        DefaultFPS,
		HoldWindow: input.DefaultHoldWindow,
	}
}

// Load reads .env from the working directory, then the process environment,
// then args (without the program name).
func Load(args []string) (Config, error) {
	return LoadFrom(args, ".env", os.LookupEnv)
}

// LoadFrom is Load with an explicit .env path and environment lookup.
// A missing .env file is not an error.
func LoadFrom(args []string, envFile string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("reading %s: %w", envFile, err)
	}
	get := func(name string) (string, bool) {
		if v, ok := lookup(envPrefix + name); ok {
			return v, true
		}
		v, ok := dotenv[envPrefix+name]
		return v, ok
	}
	if err := cfg.applyEnv(get); err != nil {
		return cfg, err
	}

	set := newFlagSet(&cfg)
	if err := set.Parse(args); err != nil {
		return cfg, err
	}
	switch set.NArg() {
	case 0:
	case 1:
		cfg.Asset = set.Arg(0)
	default:
		return cfg, fmt.Errorf("expected at most one sound file, got %d", set.NArg())
	}

	return cfg, cfg.validate()
}

func newFlagSet(cfg *Config) *flag.FlagSet {
	set := flag.NewFlagSet("boing", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	set.BoolVar(&cfg.Window, "window", cfg.Window, "open a desktop window instead of the terminal UI")
	set.BoolVar(&cfg.Mute, "mute", cfg.Mute, "run without audio")
	set.IntVar(&cfg.FPS, "fps", cfg.FPS, "terminal frame rate")
	set.DurationVar(&cfg.HoldWindow, "hold", cfg.HoldWindow, "how long a terminal key press counts as held")
	set.StringVar(&cfg.LogFile, "log", cfg.LogFile, "write logs to this file")
	return set
}

// Usage describes the command line.
func Usage() string {
	var b strings.Builder
	b.WriteString("usage: boing [flags] [sound file]\n\n")
	b.WriteString("Supported sound files: " + media.SupportedExtsList() + "\n")
	b.WriteString("Environment: BOING_ASSET, BOING_WINDOW, BOING_MUTE, BOING_FPS, BOING_HOLD, BOING_LOG (also read from .env)\n\n")
	cfg := Default()
	set := newFlagSet(&cfg)
	set.SetOutput(&b)
	set.PrintDefaults()
	return b.String()
}

func (c *Config) applyEnv(get func(string) (string, bool)) error {
	if v, ok := get("ASSET"); ok {
		c.Asset = v
	}
	if v, ok := get("LOG"); ok {
		c.LogFile = v
	}
	for name, dst := range map[string]*bool{"WINDOW": &c.Window, "MUTE": &c.Mute} {
		v, ok := get(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = b
	}
	if v, ok := get("FPS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sFPS: %w", envPrefix, err)
		}
		c.FPS = n
	}
	if v, ok := get("HOLD"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sHOLD: %w", envPrefix, err)
		}
		c.HoldWindow = d
	}
	return nil
}

func (c Config) validate() error {
	if c.FPS < 1 || c.FPS > maxFPS {
		return fmt.Errorf("fps must be between 1 and %d, got %d", maxFPS, c.FPS)
	}
	if c.HoldWindow <= 0 {
		return fmt.Errorf("hold window must be positive, got %v", c.HoldWindow)
	}
	return nil
}
