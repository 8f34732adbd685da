package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-match/audio"
	"github.com/lixenwraith/vi-match/config"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	debugFlag  = flag.Bool("debug", false, "Log to stderr at debug level")
	seedFlag   = flag.Uint64("seed", 0, "Board seed, 0 for random")
	assetsFlag = flag.String("assets", "", "Directory of gem0.png..gemN.png, overrides display.assets")
)

func main() {
	flag.Parse()

	logger := logrus.New()
	logger.Out = io.Discard
	if *debugFlag {
		logger.Out = os.Stderr
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "vi-match-gui: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *logrus.Logger) error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *assetsFlag != "" {
		cfg.Display.Assets = *assetsFlag
	}

	var sound *audio.SoundManager
	if ac, err := audio.FromConfig(cfg); err != nil {
		logger.WithError(err).Warn("audio config rejected, continuing without audio")
	} else {
		sound = audio.NewSoundManager(ac)
		if err := sound.Initialize(); err != nil {
			if !errors.Is(err, audio.ErrAudioDisabled) {
				logger.WithError(err).Warn("audio initialization failed, continuing without audio")
			}
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	win, err := newWindow(cfg, *seedFlag, logger, sound)
	if err != nil {
		return err
	}

	b := win.canvas.Bounds()
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowTitle("vi-match")
	ebiten.SetTPS(cfg.Timing.TickRate)

	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
