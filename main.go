// blastradius is a terminal sandbox for explosions, shrapnel, flashbangs
// and shockwaves.
//
//	go run . [-config blastradius.toml]
package main

import (
	"flag"
	"fmt"
	"os"

	"blastradius/internal/config"
	"blastradius/internal/logging"
	"blastradius/internal/sandbox"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "", "TOML configuration file")
	flag.Parse()
	if err := run(*cfgPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	sb, err := sandbox.New(screen, cfg, log)
	if err != nil {
		screen.Fini()
		return err
	}
	log.Info("sandbox started", zap.String("config", cfgPath))
	sb.Run()
	return nil
}
