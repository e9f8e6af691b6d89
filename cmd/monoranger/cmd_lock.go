package main

import (
	"github.com/ag14774/monoranger/internal/poetry"
	"github.com/ag14774/monoranger/internal/ui"
	"github.com/spf13/cobra"
)

func newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock [-- <lock-flags>]",
		Short: "Update the shared lock file from the monorepo root",
		Args:  cobra.ArbitraryArgs,
		RunE:  runLock,
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runLock(cmd *cobra.Command, args []string) error {
	inv, err := loadInvocation(cmd)
	if err != nil {
		return err
	}
	if !inv.active() {
		return inv.passthrough(append([]string{"lock"}, args...)...)
	}

	ctx, err := inv.resolve()
	if err != nil {
		return err
	}

	ui.Info(cmd.ErrOrStderr(), "Running lock from monorepo root %s", ctx.Root)
	return poetry.Lock(ctx.Root, args...)
}
