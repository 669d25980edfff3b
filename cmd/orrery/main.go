//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"orrery/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	reg, params, err := cfg.Load()
	if err != nil {
		log.Fatalf("load scene: %v", err)
	}

	game := app.New(cfg, reg, params)

	ebiten.SetWindowTitle("orrery — " + cfg.SceneName())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
