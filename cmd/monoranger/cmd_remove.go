package main

import (
	"github.com/ag14774/monoranger/internal/poetry"
	"github.com/ag14774/monoranger/internal/ui"
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <packages...> [-- <remove-flags>]",
		Short: "Remove dependencies from the current project and prune the shared environment",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRemove,
	}
	cmd.Flags().Bool("dry-run", false, "Show the operations without executing them")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	inv, err := loadInvocation(cmd)
	if err != nil {
		return err
	}
	if !inv.active() {
		argv := []string{"remove"}
		if dryRun {
			argv = append(argv, "--dry-run")
		}
		return inv.passthrough(append(argv, args...)...)
	}

	// Refuse before any mutation when a target is not declared here. Only
	// the leading package names are checked; flags and their values are
	// the underlying command's business.
	targets, _ := splitTargets(args)
	for _, pkg := range targets {
		if _, err := inv.manifest.Dependency(pkg); err != nil {
			return err
		}
	}

	ctx, err := inv.resolve()
	if err != nil {
		return err
	}

	cleanup := trackStrayLock(ctx)
	defer cleanup()
	if err := poetry.Remove(inv.dir, args, poetry.RemoveOpts{LockOnly: true, DryRun: dryRun}); err != nil {
		return err
	}
	if dryRun {
		return nil
	}

	// Install with sync so packages no longer referenced by any project
	// leave the shared environment; packages still used by siblings stay.
	ui.Info(cmd.ErrOrStderr(), "Updating shared lock file at monorepo root %s", ctx.Root)
	if err := poetry.Lock(ctx.Root); err != nil {
		warnStale(cmd.ErrOrStderr(), inv.manifest.Name)
		return err
	}
	if err := poetry.Install(ctx.Root, poetry.InstallOpts{Sync: true}); err != nil {
		warnStale(cmd.ErrOrStderr(), inv.manifest.Name)
		return err
	}
	return nil
}
