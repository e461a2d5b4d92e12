package cmd

import (
	"fmt"

	"github.com/basisdocs/mdiff/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	matchingFlag string
	debugFlag    bool
	configFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "mdiff",
	Short: "Structural markdown diff engine",
	Long: `mdiff aligns two markdown documents block by block, diffs their
content at the word and character level, and detects paragraph splits and
moved text.

This is a demo CLI over the mdiff engine: block alignment by weighted LCS
over Dice similarity, multi-level inline diff, split/move detection, and a
declarative rewrite-rule pass over the inline result.`,
	Version:           Version,
	PersistentPreRunE: applyGlobalConfig,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&matchingFlag, "matching", "normal", "block matching sensitivity: strict, normal, or loose")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable invariant validation and debug-log dumps")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "load matching/debug settings from a .yaml/.yml/.json config file")
}

// applyGlobalConfig loads --config (if given) as the base process-wide
// config, then lets any explicitly-passed --matching/--debug flag override
// it, matching the teacher's pattern of resolving flags once in a
// PersistentPreRunE before any subcommand runs.
func applyGlobalConfig(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("matching") {
		cfg.MatchingLevel = config.ParseMatchingLevel(matchingFlag)
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debugFlag
	}
	config.SetMatchingLevel(cfg.MatchingLevel)
	config.SetDebug(cfg.Debug)
	return nil
}
