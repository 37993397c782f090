package web

import (
	"strings"

	gconfig "github.com/Laisky/go-config/v2"
)

// DefaultExtractPath is the route of the extraction endpoint when not configured.
const DefaultExtractPath = "/api/extract"

// Settings holds HTTP configuration.
type Settings struct {
	ExtractPath string
}

// LoadSettingsFromConfig reads the shared configuration with defaults.
func LoadSettingsFromConfig() Settings {
	cfg := Settings{
		ExtractPath: strings.TrimSpace(gconfig.Shared.GetString("settings.web.extract_path")),
	}
	if cfg.ExtractPath == "" || !strings.HasPrefix(cfg.ExtractPath, "/") {
		cfg.ExtractPath = DefaultExtractPath
	}

	return cfg
}
