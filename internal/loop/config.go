package loop

import (
	"time"

	"github.com/tomz197/gallery/internal/config"
	"github.com/tomz197/gallery/internal/draw"
	"github.com/tomz197/gallery/internal/object"
)

// RespawnDelay is how long a hit target stays hidden, in seconds.
const RespawnDelay = 1.0

// Terminal rendering.
const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS

	// The canvas never grows past this many cells; larger terminals get it
	// centred with a border.
	maxTermWidth  = 160
	maxTermHeight = 60
)

// DefaultRoster returns the four built-in target identities. Image paths
// are relative to the asset directory.
func DefaultRoster() []object.Identity {
	return []object.Identity{
		{Name: "Ruby", Color: draw.Hex("#FF6B6B"), Image: "target1.png"},
		{Name: "Teal", Color: draw.Hex("#4ECDC4"), Image: "target2.png"},
		{Name: "Sunny", Color: draw.Hex("#FFD93D"), Image: "target3.png"},
		{Name: "Lilac", Color: draw.Hex("#af95e1"), Image: "target4.png"},
	}
}

// OptionsFromConfig fills the sizing and timing options from cfg. Collaborators
// (clock, display, logger) are left for the caller.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Width:         float64(cfg.CanvasWidth),
		Height:        float64(cfg.CanvasHeight),
		RoundDuration: cfg.RoundDuration,
		TargetCount:   cfg.TargetCount,
		Roster:        DefaultRoster(),
	}
}

// ImagePaths lists the image paths a roster refers to.
func ImagePaths(roster []object.Identity) []string {
	paths := make([]string, 0, len(roster))
	for _, id := range roster {
		if id.Image != "" {
			paths = append(paths, id.Image)
		}
	}
	return paths
}
