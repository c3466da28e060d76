package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atheneum-dev/forge/internal/app"
	"github.com/atheneum-dev/forge/internal/project"
)

// configCmd groups configuration file operations.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the forge.toml configuration file",
}

// configInitCmd scaffolds forge.toml without generating any files.
var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Scaffold a forge.toml without generating files",
	Long: `Write a starter forge.toml to the given directory so it can be
reviewed and edited before the first generation pass.

Examples:
  forge config init ./atheneum --name Atheneum
  forge config init ./tool --name tool --type python`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigInit,
}

// Config init flags
var (
	configName  string
	configType  string
	configForce bool
)

func init() {
	configInitCmd.Flags().StringVar(&configName, FlagName, "", DescName)
	configInitCmd.Flags().StringVar(&configType, FlagType, string(project.TypeCPP), DescType)
	configInitCmd.Flags().BoolVar(&configForce, FlagForce, false, DescForce)
	_ = configInitCmd.MarkFlagRequired(FlagName)

	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	typ := project.ParseType(configType)
	if typ == project.TypeNone {
		return fmt.Errorf("unknown project type %q, expected cpp or python", configType)
	}

	path, err := app.InitConfig(app.InitConfigOptions{
		TargetDir:   args[0],
		ProjectName: configName,
		Type:        typ,
		DataDir:     dataDir(),
		Force:       configForce,
		Prompt:      promptForParameter,
	})
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Generated config file at %s", path))
	return nil
}
