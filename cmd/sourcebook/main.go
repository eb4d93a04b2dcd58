// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sourcebook CLI, which turns a PDF
// sourcebook into a page-delimited plain-text file under the data directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the sourcebook CLI. Running it with an
// input PDF and an output name performs the extraction.
var rootCmd = &cobra.Command{
	Use:   "sourcebook <input-pdf-path> <output-name>",
	Short: "Extract the text of a PDF sourcebook into a page-delimited text file",
	Long: `sourcebook reads a PDF and writes its text layer to <data-dir>/<output-name>.txt.
Each page that has text becomes a block headed "--- Page N ---"; blocks are
separated by a blank line. Pages without text (scanned images, unreadable
content) are left out but keep their numbering.`,
	Example: `  sourcebook "La Mina Perdida de Phandelver.pdf" adventure
  sourcebook "Dungeon Masters Guide.pdf" dmg`,
	Args: requireInputAndName,
	RunE: runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sourcebook.yaml or ~/.config/sourcebook/sourcebook.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log per-page diagnostics")

	rootCmd.Flags().String("base-dir", ".", "base location the data directory is resolved against")
	rootCmd.Flags().String("data-dir", "data", "directory under base-dir that receives <output-name>.txt")
	rootCmd.Flags().String("format", "text", "summary format: text or yaml")

	bindFlags()
}

// bindFlags wires flags to viper keys so config file and SOURCEBOOK_*
// environment values apply when a flag is not given.
func bindFlags() {
	viper.SetDefault("base_dir", ".")
	viper.SetDefault("data_dir", "data")
	viper.SetDefault("format", "text")

	_ = viper.BindPFlag("base_dir", rootCmd.Flags().Lookup("base-dir"))
	_ = viper.BindPFlag("data_dir", rootCmd.Flags().Lookup("data-dir"))
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sourcebook")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sourcebook"))
		}
	}

	viper.SetEnvPrefix("SOURCEBOOK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the stderr diagnostics logger. Only warnings are shown
// unless verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
