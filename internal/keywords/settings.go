package keywords

import (
	"path/filepath"
	"strings"

	gconfig "github.com/Laisky/go-config/v2"
)

// Settings holds tokenizer configuration.
type Settings struct {
	// DictPath is a kagome dictionary archive on disk.
	// Empty selects the embedded IPA dictionary.
	DictPath string
	// Preload builds the tokenizer at startup instead of on the first request.
	Preload bool
}

// LoadSettingsFromConfig reads the shared configuration.
// A relative dict_path is resolved against the directory of the settings file.
func LoadSettingsFromConfig() Settings {
	cfg := Settings{
		DictPath: strings.TrimSpace(gconfig.Shared.GetString("settings.tokenizer.dict_path")),
		Preload:  gconfig.Shared.GetBool("settings.tokenizer.preload"),
	}

	if cfg.DictPath != "" && !filepath.IsAbs(cfg.DictPath) {
		if cfgDir := strings.TrimSpace(gconfig.Shared.GetString("cfg_dir")); cfgDir != "" {
			cfg.DictPath = filepath.Join(cfgDir, cfg.DictPath)
		}
	}

	return cfg
}
