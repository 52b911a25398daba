package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/boing/internal/boing"
	"github.com/olivier-w/boing/internal/config"
	"github.com/olivier-w/boing/internal/player"
	"github.com/olivier-w/boing/internal/spring"
	"github.com/olivier-w/boing/internal/toy"
	"github.com/olivier-w/boing/internal/ui"
	"github.com/olivier-w/boing/internal/window"
)

// audioEngine is what the frontends need from player.Engine or player.Silent.
type audioEngine interface {
	boing.Engine
	Ended() <-chan boing.InstanceID
	Close() error
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		fmt.Print(config.Usage())
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, config.Usage())
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	switch {
	case cfg.LogFile != "":
		f, err := tea.LogToFile(cfg.LogFile, "boing")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	case !cfg.Window:
		// stray log lines would tear the alt screen
		log.SetOutput(io.Discard)
	}

	clip := loadClip(cfg.Asset)
	engine := openEngine(clip, cfg.Mute)
	defer engine.Close()

	t := toy.New(spring.DefaultRestConfig(), engine)

	if cfg.Window {
		return window.Run(t, engine.Ended())
	}

	model := ui.New(t, engine.Ended(), ui.Options{FPS: cfg.FPS, HoldWindow: cfg.HoldWindow})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// loadClip decodes the configured asset, falling back to the built-in sound.
func loadClip(path string) *player.Clip {
	if path == "" {
		return player.SynthClip()
	}
	clip, err := player.LoadClip(path)
	if err != nil {
		log.Printf("boing: %v; using the built-in sound", err)
		return player.SynthClip()
	}
	return clip
}

// openEngine opens the audio device, or a silent engine when muted or when
// no device is available.
func openEngine(clip *player.Clip, mute bool) audioEngine {
	if !mute {
		e, err := player.New(clip)
		if err == nil {
			return e
		}
		log.Printf("boing: %v; continuing without sound", err)
	}
	return player.NewSilent(clip.Duration())
}
