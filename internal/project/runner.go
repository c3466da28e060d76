package project

import (
	"context"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/atheneum-dev/forge/internal/debug"
)

// Run executes batches in order, blocking on each command. Cancellation
// is honored between commands through exec.CommandContext. The first
// nonzero exit aborts the run with a CommandFailed error.
func Run(ctx context.Context, batches []Batch) error {
	for _, batch := range batches {
		if err := os.MkdirAll(batch.Dir, 0755); err != nil {
			return NewCommandError("mkdir", batch.Dir, err)
		}
		for _, raw := range batch.Cmds {
			argv, err := shellquote.Split(raw)
			if err != nil {
				return NewCommandError(raw, batch.Dir, err)
			}
			if len(argv) == 0 {
				continue
			}
			debug.Debug("[project] Running %q in %s", raw, batch.Dir)
			cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
			cmd.Dir = batch.Dir
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			if err := cmd.Run(); err != nil {
				return NewCommandError(raw, batch.Dir, err)
			}
		}
	}
	return nil
}
