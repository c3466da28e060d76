package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atheneum-dev/forge/internal/app"
)

// copyrightCmd refreshes copyright headers across a project.
var copyrightCmd = &cobra.Command{
	Use:   "copyright [path]",
	Short: "Refresh copyright headers in recognized source files",
	Long: `Rewrite the copyright header in every recognized source file under
the project, using the header template declared in the manifest.

Files whose leading lines already carry a matching header get it
replaced in place; other files get the header prepended.

Examples:
  forge copyright
  forge copyright ./atheneum`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCopyright,
}

func runCopyright(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	printInfo(fmt.Sprintf("Updating copyright headers at %s", target))
	if err := app.RefreshCopyright(app.CopyrightOptions{
		TargetDir: target,
		DataDir:   dataDir(),
	}); err != nil {
		return err
	}
	printSuccess("Copyright headers are up to date")
	return nil
}
