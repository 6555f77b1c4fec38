package main

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AdamBaali/windows-mdm-commands/fetch"
)

var flagFetchOutput string

// fetchCmd downloads the latest DDF bundle without extracting anything
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the latest DDF bundle ZIP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		client := fetch.NewClient()
		url, err := client.BundleURL(ctx)
		if err != nil {
			return err
		}
		logger.Info("downloading DDF bundle", zap.String("url", url))
		raw, err := client.Get(ctx, url)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagFetchOutput, raw, 0o644); err != nil {
			return errors.Wrap(err, "writing bundle")
		}
		logger.Info("wrote DDF bundle",
			zap.String("output", flagFetchOutput), zap.Int("bytes", len(raw)))
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVarP(&flagFetchOutput, "output", "o", "ddf.zip", "bundle output path")
}
