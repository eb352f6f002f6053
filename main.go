package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	flag "github.com/spf13/pflag"

	"github.com/iburimskiy/analog-clock/internal/clockface"
	"github.com/iburimskiy/analog-clock/internal/config"
	"github.com/iburimskiy/analog-clock/internal/game"
	"github.com/iburimskiy/analog-clock/internal/widget"
)

func main() {
	tick := flag.Bool("tick", false, "play a click every second")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(*tick); err != nil {
		log.Error("clock stopped", "err", err)
		if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle)); derr != nil {
			log.Debug("no error dialog", "err", derr)
		}
		os.Exit(1)
	}
}

func run(tick bool) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetScreenClearedEveryFrame(false)

	var g *game.Game
	clock := widget.NewClock(widget.Options{
		Window:  game.Window{},
		Repaint: func() { g.RequestRepaint() },
		HitTest: clockface.Euclidean,
	})

	var hooks []func()
	if tick {
		c, err := game.NewChime()
		if err != nil {
			log.Warn("audible tick disabled", "err", err)
		} else {
			hooks = append(hooks, c.Click)
		}
	}
	g = game.NewGame(clock, hooks...)

	log.Info("starting clock", "width", config.WindowWidth, "height", config.WindowHeight, "tick", tick)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
