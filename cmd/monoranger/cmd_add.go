package main

import (
	"github.com/ag14774/monoranger/internal/poetry"
	"github.com/ag14774/monoranger/internal/ui"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <packages...> [-- <add-flags>]",
		Short: "Add dependencies to the current project and refresh the shared state",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAdd,
	}
	cmd.Flags().Bool("dry-run", false, "Show the operations without executing them")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	inv, err := loadInvocation(cmd)
	if err != nil {
		return err
	}
	if !inv.active() {
		argv := []string{"add"}
		if dryRun {
			argv = append(argv, "--dry-run")
		}
		return inv.passthrough(append(argv, args...)...)
	}
	ctx, err := inv.resolve()
	if err != nil {
		return err
	}

	// Step 1: mutate only the current project's manifest. The lock-only
	// mode keeps the underlying command away from the environment; any
	// per-project lock file it drops is removed again.
	cleanup := trackStrayLock(ctx)
	defer cleanup()
	if err := poetry.Add(inv.dir, args, poetry.AddOpts{LockOnly: true, DryRun: dryRun}); err != nil {
		return err
	}
	if dryRun {
		return nil
	}

	// Steps 2 and 3 are best-effort: the manifest change reflects explicit
	// user intent and is not rolled back when shared-state refresh fails.
	ui.Info(cmd.ErrOrStderr(), "Updating shared lock file at monorepo root %s", ctx.Root)
	if err := poetry.Lock(ctx.Root); err != nil {
		warnStale(cmd.ErrOrStderr(), inv.manifest.Name)
		return err
	}
	if err := poetry.Install(ctx.Root, poetry.InstallOpts{}); err != nil {
		warnStale(cmd.ErrOrStderr(), inv.manifest.Name)
		return err
	}
	return nil
}
