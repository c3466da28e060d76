package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagName    = "name"
	FlagType    = "type"
	FlagDataDir = "data-dir"
	FlagForce   = "force"
	FlagDryRun  = "dry-run"
	FlagGitInit = "git-init"
	FlagVendor  = "init-submodules"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"

	// Flag descriptions
	DescName    = "Name of the new project"
	DescType    = "Project type (cpp or python)"
	DescDataDir = "Root directory holding the per-type template trees"
	DescForce   = "Overwrite an existing forge.toml"
	DescDryRun  = "Show actions without execution"
	DescGitInit = "Initialize a git repository and install hooks"
	DescVendor  = "Vendor dependency submodules after generation"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress non-error output"
	DescDebug   = "Enable debug logging"
)
