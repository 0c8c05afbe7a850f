package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tomz197/gallery/internal/asset"
	"github.com/tomz197/gallery/internal/config"
	"github.com/tomz197/gallery/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	// Log lines would tear the canvas, so they only go to a file.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, cfg)

	opts := loop.OptionsFromConfig(cfg)
	opts.Logger = logger

	images := asset.NewStore(os.DirFS(cfg.AssetDir), logger)
	images.LoadAll(loop.ImagePaths(opts.Roster)...)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(context.Background(), reader, os.Stdout, loop.RunOptions{
		Game:   opts,
		Images: images,
	})
}
