// Package cli wires the forge commands. All real work happens in
// internal/app; this layer parses flags, prompts, and prints.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/atheneum-dev/forge/internal/debug"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalDataDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Project scaffolding and update tool",
	Long: `forge generates projects from template trees and keeps them in sync.

Use "forge new <path> --name <name>" to scaffold a new project: it writes
a forge.toml configuration, renders the template tree, and can initialize
git, vendored submodules, and pre-commit hooks.

Use "forge update <path>" on an existing project to pull in template
changes. Diverged files are merged rather than overwritten; .ours and
.theirs snapshots are left next to every merged file for review.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalDataDir, FlagDataDir, "", DescDataDir)

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(copyrightCmd)
	rootCmd.AddCommand(versionCmd)
}

// dataDir resolves the template data root: the --data-dir flag, then the
// FORGE_DATA_DIR environment variable, then a data directory next to the
// executable.
func dataDir() string {
	if globalDataDir != "" {
		return globalDataDir
	}
	if env := os.Getenv("FORGE_DATA_DIR"); env != "" {
		return env
	}
	exe, err := os.Executable()
	if err != nil {
		return "data"
	}
	return filepath.Join(filepath.Dir(exe), "data")
}
