package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atheneum-dev/forge/internal/app"
)

// updateCmd re-synchronizes an existing project with its template tree.
var updateCmd = &cobra.Command{
	Use:   "update [path]",
	Short: "Re-synchronize a project with its template tree",
	Long: `Regenerate a project's files from its template tree. Diverged files
are merged, not overwritten; .ours and .theirs snapshots of both sides
are left next to every merged file.

Paths listed under skip in forge.toml are never touched.

Examples:
  forge update
  forge update ./atheneum
  forge update ./atheneum --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpdate,
}

// Update command flags
var (
	updateDryRun bool
	updateVendor bool
)

func init() {
	updateCmd.Flags().BoolVar(&updateDryRun, FlagDryRun, false, DescDryRun)
	updateCmd.Flags().BoolVar(&updateVendor, FlagVendor, false, DescVendor)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	result, err := app.UpdateProject(cmd.Context(), app.UpdateOptions{
		TargetDir:      target,
		DataDir:        dataDir(),
		InitSubmodules: updateVendor,
		DryRun:         updateDryRun,
		Prompt:         promptForParameter,
	})
	if err != nil {
		return err
	}

	printInfo(fmt.Sprintf("Updating %s project at %s", result.Type, target))
	printStatusLines(result.Lines)
	if updateDryRun {
		printWarning("Dry run, nothing was written")
	} else {
		printSuccess("Project is up to date")
	}
	return nil
}
