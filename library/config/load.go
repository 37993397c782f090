// Package config loads the optional settings file into the shared configuration.
package config

import (
	"path/filepath"
	"strings"

	"github.com/Laisky/keyword-extractor/library/log"

	errors "github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
)

// LoadFromFile merges the YAML file at cfgPath into gconfig.Shared.
// An empty path is not an error: every setting has a default.
func LoadFromFile(cfgPath string) error {
	cfgPath = strings.TrimSpace(cfgPath)
	if cfgPath == "" {
		log.Logger.Info("no configuration file given, use defaults")
		return nil
	}

	gconfig.Shared.Set("cfg_dir", filepath.Dir(cfgPath))
	if err := gconfig.Shared.LoadFromFile(cfgPath); err != nil {
		return errors.Wrapf(err, "load configuration %q", cfgPath)
	}

	log.Logger.Info("load configuration",
		zap.String("config", cfgPath))
	return nil
}
