package config

import "math"

// Config holds the settings shared by every front end.
type Config struct {
	RoundDuration float64 // seconds
	CanvasWidth   int
	CanvasHeight  int
	TargetCount   int
	AssetDir      string
	LogLevel      string
	LogFile       string

	SSHHost        string
	SSHPort        string
	SSHHostKey     string
	SSHDisplayHost string
	MetricsAddr    string

	WebHost string
	WebPort string
}

// Load reads Config from the environment. Non-positive or non-finite numbers
// fall back to the defaults.
func Load() Config {
	cfg := Config{
		RoundDuration: GetEnvFloat("ROUND_DURATION", 15),
		CanvasWidth:   GetEnvInt("CANVAS_WIDTH", 800),
		CanvasHeight:  GetEnvInt("CANVAS_HEIGHT", 600),
		TargetCount:   GetEnvInt("TARGET_COUNT", 4),
		AssetDir:      GetEnv("ASSET_DIR", "assets"),
		LogLevel:      GetEnv("LOG_LEVEL", "info"),
		LogFile:       GetEnv("LOG_FILE", ""),

		SSHHost:        GetEnv("SSH_HOST", "0.0.0.0"),
		SSHPort:        GetEnv("SSH_PORT", "2222"),
		SSHHostKey:     GetEnv("SSH_HOST_KEY", ".ssh/id_ed25519"),
		SSHDisplayHost: GetEnv("SSH_DISPLAY_HOST", "localhost"),
		MetricsAddr:    GetEnv("METRICS_ADDR", ""),

		WebHost: GetEnv("WEB_HOST", "0.0.0.0"),
		WebPort: GetEnv("WEB_PORT", "8080"),
	}
	if d := cfg.RoundDuration; math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		cfg.RoundDuration = 15
	}
	if cfg.CanvasWidth <= 0 {
		cfg.CanvasWidth = 800
	}
	if cfg.CanvasHeight <= 0 {
		cfg.CanvasHeight = 600
	}
	if cfg.TargetCount <= 0 {
		cfg.TargetCount = 4
	}
	return cfg
}
