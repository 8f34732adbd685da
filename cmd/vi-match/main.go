package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-match/audio"
	"github.com/lixenwraith/vi-match/config"
	"github.com/lixenwraith/vi-match/core"
	"github.com/lixenwraith/vi-match/engine"
	"github.com/lixenwraith/vi-match/terminal"
)

var (
	configFlag   = flag.String("config", "", "TOML config file")
	debugFlag    = flag.Bool("debug", false, "Write debug logs to "+logDir+"/"+logFileName)
	seedFlag     = flag.Uint64("seed", 0, "Board seed, 0 for random")
	headlessFlag = flag.Bool("headless", false, "Autoplay one session without a screen and print the result")
	assetsFlag   = flag.String("assets", "", "Directory of gem0.png..gemN.png, overrides display.assets")
	colorFlag    = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	dumpFlag     = flag.Bool("dump-config", false, "Print the default config and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if *dumpFlag {
		fmt.Print(config.Sample)
		return
	}

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(logger); err != nil {
		logger.WithError(err).Error("exit")
		fmt.Fprintf(os.Stderr, "vi-match: %v\n", err)
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

	// Without a terminal there is nothing to draw on
	headless := *headlessFlag || !term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		opts := []engine.Option{engine.WithLogger(logger)}
		if *seedFlag != 0 {
			opts = append(opts, engine.WithSeed(*seedFlag))
		}
		s, err := engine.NewSession(cfg, opts...)
		if err != nil {
			return err
		}
		return runHeadless(s, os.Stdout, logger)
	}

	colorMode, err := terminal.ParseColorMode(*colorFlag)
	if err != nil {
		return err
	}

	// Terminal cells are tiny; gems are rendered at the terminal cell size
	cfg.Board.CellSize = float64(cfg.Display.TerminalCellSize)
	if err := cfg.Validate(); err != nil {
		return err
	}

	sound := startAudio(cfg, logger)
	if sound != nil {
		defer sound.Cleanup()
	}

	screen, err := terminal.New(colorMode)
	if err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.RegisterCrashScreen(screen)
	defer func() {
		core.RegisterCrashScreen(nil)
		screen.Fini()
	}()

	g, err := newGame(cfg, *seedFlag, logger, sound, screen)
	if err != nil {
		return err
	}
	logger.WithField("color", colorMode.String()).Info("terminal ready")
	return g.run()
}

// startAudio returns nil when sound is off or the device is unavailable
func startAudio(cfg config.Config, logger *logrus.Logger) *audio.SoundManager {
	ac, err := audio.FromConfig(cfg)
	if err != nil {
		logger.WithError(err).Warn("audio config rejected, continuing without audio")
		return nil
	}
	sound := audio.NewSoundManager(ac)
	if err := sound.Initialize(); err != nil {
		if !errors.Is(err, audio.ErrAudioDisabled) {
			logger.WithError(err).Warn("audio initialization failed, continuing without audio")
		}
		return nil
	}
	return sound
}
