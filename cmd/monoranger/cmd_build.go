package main

import (
	"github.com/ag14774/monoranger/internal/poetry"
	"github.com/ag14774/monoranger/internal/rewrite"
	"github.com/ag14774/monoranger/internal/ui"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [-- <build-flags>]",
		Short: "Build the current project with path dependencies pinned to versions",
		Args:  cobra.ArbitraryArgs,
		RunE:  runBuild,
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	inv, err := loadInvocation(cmd)
	if err != nil {
		return err
	}
	if !inv.active() {
		return inv.passthrough(append([]string{"build"}, args...)...)
	}

	ctx, err := inv.resolve()
	if err != nil {
		return err
	}

	deps, changed, err := rewrite.Pin(inv.manifest, ctx.Root, inv.cfg.VersionRewriteRule)
	if err != nil {
		return err
	}
	if !changed {
		return poetry.Build(inv.dir, args...)
	}

	ui.Info(cmd.ErrOrStderr(), "Building %s with pinned path dependencies (%s)", inv.manifest.Name, inv.cfg.VersionRewriteRule)
	scope, err := rewrite.Begin(inv.manifest, deps)
	if err != nil {
		return err
	}

	buildErr := poetry.Build(inv.dir, args...)
	if err := scope.Restore(); err != nil {
		if buildErr != nil {
			ui.Error(cmd.ErrOrStderr(), "restoring manifest after failed build: %v", err)
			return buildErr
		}
		return err
	}
	return buildErr
}
