// Package cmd contains the command line entrypoints.
package cmd

import (
	"context"
	"fmt"

	"github.com/Laisky/keyword-extractor/internal/keywords"
	"github.com/Laisky/keyword-extractor/library/config"
	"github.com/Laisky/keyword-extractor/library/log"

	errors "github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"
)

var rootCMD = &cobra.Command{
	Use:   "keyword-extractor",
	Short: "keyword-extractor",
	Long:  `extract noun keywords from japanese text`,
	Args:  cobra.NoArgs,
}

func initialize(ctx context.Context, cmd *cobra.Command) error {
	if err := gconfig.Shared.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind pflags")
	}

	if err := setupSettings(ctx); err != nil {
		return errors.Wrap(err, "setup settings")
	}
	if err := setupLogger(ctx); err != nil {
		return errors.Wrap(err, "setup logger")
	}
	if err := validateStartupConfig(); err != nil {
		return errors.Wrap(err, "validate config")
	}

	return nil
}

func setupSettings(ctx context.Context) error {
	// mode
	if gconfig.Shared.GetBool("debug") {
		fmt.Println("run in debug mode")
		gconfig.Shared.Set("log-level", "debug")
	}

	// load configuration
	return config.LoadFromFile(gconfig.Shared.GetString("config"))
}

func setupLogger(ctx context.Context) error {
	lvl := gconfig.Shared.GetString("log-level")
	if err := log.Logger.ChangeLevel(glog.Level(lvl)); err != nil {
		return errors.Wrapf(err, "change log level to %q", lvl)
	}

	return nil
}

// newKeywordsService builds the service graph shared by every subcommand.
func newKeywordsService() (*keywords.Service, keywords.Settings, error) {
	settings := keywords.LoadSettingsFromConfig()
	provider, err := keywords.NewProvider(
		keywords.NewKagomeBuilder(settings),
		log.Logger.Named("tokenizer_provider"),
	)
	if err != nil {
		return nil, settings, errors.Wrap(err, "new tokenizer provider")
	}

	svc, err := keywords.NewService(provider, log.Logger.Named("keywords"))
	if err != nil {
		return nil, settings, errors.Wrap(err, "new keywords service")
	}

	return svc, settings, nil
}

func init() {
	rootCMD.PersistentFlags().Bool("debug", false, "run in debug mode")
	rootCMD.PersistentFlags().String("listen", "localhost:8080", "like `localhost:8080`")
	rootCMD.PersistentFlags().StringP("config", "c", "", "optional config file path")
	rootCMD.PersistentFlags().String("log-level", "info", "`debug/info/warn/error`")
}

// Execute execute root command
func Execute() {
	if err := rootCMD.Execute(); err != nil {
		log.Logger.Panic("start", zap.Error(err))
	}
}
