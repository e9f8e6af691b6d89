package main

import (
	"github.com/ag14774/monoranger/internal/poetry"
	"github.com/ag14774/monoranger/internal/ui"
	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [packages...] [-- <update-flags>]",
		Short: "Update dependencies of the current project in the shared lock file",
		RunE:  runUpdate,
	}
	cmd.Flags().Bool("dry-run", false, "Show the operations without executing them")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	inv, err := loadInvocation(cmd)
	if err != nil {
		return err
	}
	if !inv.active() {
		argv := []string{"update"}
		if dryRun {
			argv = append(argv, "--dry-run")
		}
		return inv.passthrough(append(argv, args...)...)
	}

	// Named targets must be declared by the current project; updating a
	// sibling's dependency from here would silently widen the blast radius.
	// Anything flag-shaped and beyond passes through uninterpreted.
	targets, rest := splitTargets(args)
	for _, pkg := range targets {
		if _, err := inv.manifest.Dependency(pkg); err != nil {
			return err
		}
	}

	ctx, err := inv.resolve()
	if err != nil {
		return err
	}

	// With no explicit target, scope the root-level update to the current
	// project's own package so sibling dependencies stay untouched.
	if len(targets) == 0 {
		targets = []string{inv.manifest.Name}
	}

	ui.Info(cmd.ErrOrStderr(), "Running update from monorepo root %s", ctx.Root)
	if err := poetry.Update(ctx.Root, append(targets, rest...), poetry.UpdateOpts{LockOnly: true, DryRun: dryRun}); err != nil {
		return err
	}
	if dryRun {
		return nil
	}
	if err := poetry.Install(ctx.Root, poetry.InstallOpts{}); err != nil {
		ui.Warn(cmd.ErrOrStderr(), "the shared lock file was updated but the environment was not refreshed; run 'monoranger install' to reconcile")
		return err
	}
	return nil
}
