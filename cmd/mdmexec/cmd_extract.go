package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AdamBaali/windows-mdm-commands/bundle"
	"github.com/AdamBaali/windows-mdm-commands/extract"
	"github.com/AdamBaali/windows-mdm-commands/fetch"
)

var (
	flagBundle        string
	flagBundleURL     string
	flagOutput        string
	flagOwnBlockOnly  bool
	flagInheritFormat bool
)

// extractCmd downloads (or opens) a DDF bundle and writes the Exec catalogue
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract Exec commands from a DDF bundle to JSON",
	Long: `Extracts every Exec-capable node from the DDF bundle and writes the
catalogue as indented JSON, ordered by (source file, OMA-URI).

Without --bundle the latest bundle is located on the Microsoft Learn page
and downloaded first.

Examples:
  mdmexec extract
  mdmexec extract --bundle DDFv2September2025.zip -o execs.json`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&flagBundle, "bundle", "", "local DDF ZIP instead of downloading")
	extractCmd.Flags().StringVar(&flagBundleURL, "bundle-url", "", "direct DDF ZIP URL instead of scraping the Learn page")
	extractCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "JSON output path")
	extractCmd.Flags().BoolVar(&flagOwnBlockOnly, "own-block-only", false, "only detect Exec on nodes with their own DFProperties")
	extractCmd.Flags().BoolVar(&flagInheritFormat, "inherit-format", false, "resolve DFFormat/DefaultValue through the property chain")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	applyExtractFlags(cmd, &cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	zipBytes, err := loadBundle(ctx, cfg)
	if err != nil {
		return err
	}
	docs, err := bundle.XMLFiles(zipBytes)
	if err != nil {
		return err
	}
	logger.Info("parsing Exec-capable nodes", zap.Int("documents", len(docs)))

	var opts []extract.Option
	if cfg.OwnBlockOnly {
		opts = append(opts, extract.WithOwnBlockOnly())
	}
	if cfg.InheritFormat {
		opts = append(opts, extract.WithInheritedFormat())
	}
	records, err := extract.Run(ctx, docs, logger, opts...)
	if err != nil {
		return err
	}

	if err := writeJSON(cfg.Output, records); err != nil {
		return err
	}
	logger.Info("wrote Exec commands",
		zap.Int("count", len(records)), zap.String("output", cfg.Output))
	return nil
}

func applyExtractFlags(cmd *cobra.Command, cfg *Config) {
	if cmd.Flags().Changed("bundle") {
		cfg.Bundle = flagBundle
	}
	if cmd.Flags().Changed("bundle-url") {
		cfg.BundleURL = flagBundleURL
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = flagOutput
	}
	if cmd.Flags().Changed("own-block-only") {
		cfg.OwnBlockOnly = flagOwnBlockOnly
	}
	if cmd.Flags().Changed("inherit-format") {
		cfg.InheritFormat = flagInheritFormat
	}
}

func loadBundle(ctx context.Context, cfg Config) ([]byte, error) {
	if cfg.Bundle != "" {
		logger.Info("reading DDF bundle", zap.String("path", cfg.Bundle))
		raw, err := os.ReadFile(cfg.Bundle)
		return raw, errors.Wrap(err, "reading DDF bundle")
	}
	client := fetch.NewClient()
	url := cfg.BundleURL
	if url == "" {
		logger.Info("locating latest DDF bundle", zap.String("page", fetch.LearnURL))
		var err error
		if url, err = client.BundleURL(ctx); err != nil {
			return nil, err
		}
	}
	logger.Info("downloading DDF bundle", zap.String("url", url))
	return client.Get(ctx, url)
}

func writeJSON(path string, records []extract.Record) error {
	buf, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding records")
	}
	return errors.Wrap(os.WriteFile(path, append(buf, '\n'), 0o644), "writing output")
}
