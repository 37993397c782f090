package cmd

import (
	"context"

	"github.com/Laisky/keyword-extractor/internal/web"
	"github.com/Laisky/keyword-extractor/library/log"

	errors "github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"
)

var apiCMD = &cobra.Command{
	Use:   "api",
	Short: "api",
	Long:  `HTTP keyword extraction service`,
	Args:  cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		if err := initialize(ctx, cmd); err != nil {
			log.Logger.Panic("init", zap.Error(err))
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAPI(cmd.Context())
	},
}

func runAPI(ctx context.Context) error {
	svc, settings, err := newKeywordsService()
	if err != nil {
		return errors.WithStack(err)
	}

	if settings.Preload {
		if err := svc.Provider().Warmup(ctx); err != nil {
			// not fatal, the first request retries the construction
			log.Logger.Error("preload tokenizer", zap.Error(err))
		}
	}

	return web.RunServer(
		gconfig.Shared.GetString("listen"),
		svc,
		web.LoadSettingsFromConfig(),
	)
}

func init() {
	rootCMD.AddCommand(apiCMD)
}
