package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/gallery/internal/asset"
	"github.com/tomz197/gallery/internal/config"
	"github.com/tomz197/gallery/internal/desktop"
	"github.com/tomz197/gallery/internal/loop"
)

const windowTitle = "Shooting Gallery"

func main() {
	showFPS := flag.Bool("fps", false, "show FPS and TPS")
	flag.Parse()

	cfg := config.Load()
	logger := config.NewLogger(os.Stderr, cfg)

	display := desktop.NewTitleDisplay(windowTitle)
	opts := loop.OptionsFromConfig(cfg)
	opts.Logger = logger
	opts.Display = display

	images := asset.NewStore(os.DirFS(cfg.AssetDir), logger)
	images.LoadAll(loop.ImagePaths(opts.Roster)...)

	g := desktop.New(loop.NewGame(opts), desktop.Options{
		Images:  images,
		ShowFPS: *showFPS,
	})

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(cfg.CanvasWidth, cfg.CanvasHeight)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
