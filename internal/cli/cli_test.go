package cli

import (
	"testing"
)

// TestRootSubcommands checks that every user-facing command is wired in.
func TestRootSubcommands(t *testing.T) {
	want := []string{"new", "update", "config", "copyright", "version"}
	for _, name := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestDataDirResolution(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		old := globalDataDir
		defer func() { globalDataDir = old }()
		globalDataDir = "/opt/forge-data"
		if got := dataDir(); got != "/opt/forge-data" {
			t.Errorf("dataDir() = %q, want /opt/forge-data", got)
		}
	})

	t.Run("environment fallback", func(t *testing.T) {
		old := globalDataDir
		defer func() { globalDataDir = old }()
		globalDataDir = ""
		t.Setenv("FORGE_DATA_DIR", "/srv/templates")
		if got := dataDir(); got != "/srv/templates" {
			t.Errorf("dataDir() = %q, want /srv/templates", got)
		}
	})
}

func TestNewCommandFlags(t *testing.T) {
	for _, name := range []string{FlagName, FlagType, FlagForce, FlagGitInit, FlagDryRun} {
		if newCmd.Flags().Lookup(name) == nil {
			t.Errorf("new command is missing flag %q", name)
		}
	}
}

func TestUpdateCommandFlags(t *testing.T) {
	for _, name := range []string{FlagDryRun, FlagVendor} {
		if updateCmd.Flags().Lookup(name) == nil {
			t.Errorf("update command is missing flag %q", name)
		}
	}
}
