package app

import "io"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ManifestPath points at a directory of .hcl mechanism manifests.
	// Empty disables manifest validation.
	ManifestPath string

	// Rank is this process's rank in a parallel launch group. Only rank 0
	// (or below, for non-distributed runs) announces the startup banner.
	Rank int
	// NoBanner suppresses the startup banner regardless of rank.
	NoBanner bool

	LogFormat string
	LogLevel  string

	// BannerW overrides the banner's destination stream. Nil means
	// os.Stderr; tests set it to capture the banner.
	BannerW io.Writer
}

// NewConfig validates a Config and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}
