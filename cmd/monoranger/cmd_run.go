package main

import (
	"os"

	"github.com/ag14774/monoranger/internal/poetry"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [--] <command...>",
		Short: "Run a command inside the shared monorepo environment",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRun,
	}
	// Everything from the first non-flag argument on belongs to the command
	// being run, not to this CLI.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	inv, err := loadInvocation(cmd)
	if err != nil {
		return err
	}

	// An already-activated environment wins, matching the underlying
	// tool's behavior. Conda's global "base" does not count as activated.
	if !inv.active() || inActiveEnv() {
		return inv.passthrough(append([]string{"run", "--"}, args...)...)
	}

	ctx, err := inv.resolve()
	if err != nil {
		return err
	}
	return poetry.Run(inv.dir, ctx.Root, args)
}

func inActiveEnv() bool {
	if os.Getenv("VIRTUAL_ENV") != "" {
		return true
	}
	return os.Getenv("CONDA_PREFIX") != "" && os.Getenv("CONDA_DEFAULT_ENV") != "base"
}
