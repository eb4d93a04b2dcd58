package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sourcebook/internal/convert"
	"github.com/pdiddy/sourcebook/internal/document"
	"github.com/pdiddy/sourcebook/internal/output"
	"github.com/pdiddy/sourcebook/internal/pdfdoc"
	"github.com/pdiddy/sourcebook/pkg/types"
)

// requireInputAndName accepts exactly an input path and an output name.
func requireInputAndName(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected <input-pdf-path> <output-name>, got %d argument(s)",
			document.ErrInvalidArguments, len(args))
	}
	if args[1] == "" {
		return fmt.Errorf("%w: output name must not be empty", document.ErrInvalidArguments)
	}
	return nil
}

// loadConfig reads the effective settings from flags, config file, and environment.
func loadConfig() (types.ExtractionConfig, error) {
	cfg := types.ExtractionConfig{
		BaseDir: viper.GetString("base_dir"),
		DataDir: viper.GetString("data_dir"),
		Format:  types.ReportFormat(viper.GetString("format")),
		Verbose: viper.GetBool("verbose"),
	}
	switch cfg.Format {
	case types.ReportText, types.ReportYAML:
	default:
		return cfg, fmt.Errorf("%w: unknown format %q (want text or yaml)", document.ErrInvalidArguments, cfg.Format)
	}
	return cfg, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath, name := args[0], args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(inputPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot find file %q: %w", inputPath, document.ErrInputNotFound)
		}
		return fmt.Errorf("checking %s: %w", inputPath, err)
	}

	// Arguments are valid from here on; later failures are not usage errors.
	cmd.SilenceUsage = true

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	outPath := output.ResolvePath(cfg.BaseDir, cfg.DataDir, name)
	result, err := convert.New(pdfdoc.NewReader(), logger).Convert(inputPath, outPath)
	if err != nil {
		return err
	}

	return report(cmd.OutOrStdout(), cfg.Format, result)
}

// report prints the run summary in the requested format.
func report(w io.Writer, format types.ReportFormat, r types.ExtractionResult) error {
	if format == types.ReportYAML {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	}
	fmt.Fprintf(w, "Extracted %d pages -> %s\n", r.PageCount, r.OutputPath)
	fmt.Fprintf(w, "Size: %s characters\n", humanize.Comma(int64(r.CharCount)))
	return nil
}
