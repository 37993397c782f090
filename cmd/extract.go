package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/Laisky/keyword-extractor/internal/keywords"
	"github.com/Laisky/keyword-extractor/library/log"

	errors "github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"
)

var extractCMD = &cobra.Command{
	Use:   "extract [text]",
	Short: "extract keywords from text",
	Long:  `extract keywords from the arguments, or from stdin when no argument is given`,
	PreRun: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		if err := initialize(ctx, cmd); err != nil {
			log.Logger.Panic("init", zap.Error(err))
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newKeywordsService()
		if err != nil {
			return errors.WithStack(err)
		}

		return runExtract(cmd.Context(), svc, args, os.Stdin, cmd.OutOrStdout())
	},
}

// runExtract writes {"keywords": [...]} for the question read from args or in.
func runExtract(ctx context.Context, svc *keywords.Service, args []string, in io.Reader, out io.Writer) error {
	question := strings.Join(args, " ")
	if len(args) == 0 {
		raw, err := io.ReadAll(in)
		if err != nil {
			return errors.Wrap(err, "read stdin")
		}
		question = strings.TrimSpace(string(raw))
	}

	kws, err := svc.Extract(ctx, question)
	if err != nil {
		return errors.Wrap(err, "extract keywords")
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string][]string{"keywords": kws}); err != nil {
		return errors.Wrap(err, "write result")
	}

	return nil
}

func init() {
	rootCMD.AddCommand(extractCMD)
}
