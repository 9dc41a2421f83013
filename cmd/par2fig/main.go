// par2fig renders the manuscript figures for the circadian gating analysis.
//
// Usage:
//
//	par2fig all          [--results=<path>] [--out=<dir>] [--dpi=<n>]
//	par2fig discovery    [--csv[=<path>]]
//	par2fig heatmap      [--data[=<path>]] [--max-targets=<n>]
//	par2fig model        [--data[=<path>]]
//	par2fig wee1
//	par2fig validation
//	par2fig summary      [--markdown]
//
// Every subcommand runs with zero arguments against the fixed manuscript
// layout; flags only override defaults.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"par2fig/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

var rootCmd = &cobra.Command{
	Use:   "par2fig",
	Short: "Generate publication figures from the circadian gating results",
	Long: "par2fig renders the five manuscript figures (PDF + 300 DPI PNG) from\nCOMPREHENSIVE_RESULTS.json and the standalone figure data exports.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		logging.Init(level, rootFlags.logFormat)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "Path to run config (YAML/JSON)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(discoveryCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(wee1Cmd)
	rootCmd.AddCommand(validationCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
