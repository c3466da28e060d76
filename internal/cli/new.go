package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atheneum-dev/forge/internal/app"
	"github.com/atheneum-dev/forge/internal/project"
)

// newCmd scaffolds a fresh project from a template tree.
var newCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Create a new project from a template tree",
	Long: `Create a project directory with a forge.toml configuration and
generate its files from the selected template tree.

Examples:
  forge new ./atheneum --name Atheneum
  forge new ./tool --name tool --type python --no-git-init
  forge new ./atheneum --name Atheneum --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

// New command flags
var (
	newName    string
	newType    string
	newForce   bool
	newGitInit bool
	newDryRun  bool
)

func init() {
	newCmd.Flags().StringVar(&newName, FlagName, "", DescName)
	newCmd.Flags().StringVar(&newType, FlagType, string(project.TypeCPP), DescType)
	newCmd.Flags().BoolVar(&newForce, FlagForce, false, DescForce)
	newCmd.Flags().BoolVar(&newGitInit, FlagGitInit, true, DescGitInit)
	newCmd.Flags().BoolVar(&newDryRun, FlagDryRun, false, DescDryRun)
	_ = newCmd.MarkFlagRequired(FlagName)
}

func runNew(cmd *cobra.Command, args []string) error {
	typ := project.ParseType(newType)
	if typ == project.TypeNone {
		return fmt.Errorf("unknown project type %q, expected cpp or python", newType)
	}

	printInfo(fmt.Sprintf("Creating %s project %q at %s", typ, newName, args[0]))
	result, err := app.NewProject(cmd.Context(), app.NewOptions{
		TargetDir:   args[0],
		ProjectName: newName,
		Type:        typ,
		DataDir:     dataDir(),
		Force:       newForce,
		GitInit:     newGitInit,
		DryRun:      newDryRun,
		Prompt:      promptForParameter,
	})
	if err != nil {
		return err
	}

	printInfo(fmt.Sprintf("Generated config file at %s", result.ConfigPath))
	printStatusLines(result.Lines)
	if result.HooksRan {
		printInfo("Initialized git repository and hooks")
	}
	printSuccess(fmt.Sprintf("Project %q is ready", newName))
	return nil
}
