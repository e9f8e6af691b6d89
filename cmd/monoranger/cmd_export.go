package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ag14774/monoranger/internal/monorepo"
	"github.com/ag14774/monoranger/internal/poetry"
	"github.com/ag14774/monoranger/internal/rewrite"
	"github.com/ag14774/monoranger/internal/ui"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [-- <export-flags>]",
		Short: "Export the current project's dependencies with pinned path dependencies",
		Args:  cobra.ArbitraryArgs,
		RunE:  runExport,
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	inv, err := loadInvocation(cmd)
	if err != nil {
		return err
	}
	if !inv.active() {
		return inv.passthrough(append([]string{"export"}, args...)...)
	}

	ctx, err := inv.resolve()
	if err != nil {
		return err
	}

	deps, changed, err := rewrite.Pin(inv.manifest, ctx.Root, inv.cfg.VersionRewriteRule)
	if err != nil {
		return err
	}

	// The underlying export reads the lock file next to the manifest, so
	// the shared root lock is staged into the project directory for the
	// duration of the command.
	unstage, err := stageLock(ctx)
	if err != nil {
		return err
	}
	defer unstage()

	if !changed {
		return poetry.Export(inv.dir, args)
	}

	ui.Info(cmd.ErrOrStderr(), "Exporting %s with pinned path dependencies (%s)", inv.manifest.Name, inv.cfg.VersionRewriteRule)
	scope, err := rewrite.Begin(inv.manifest, deps)
	if err != nil {
		return err
	}

	exportErr := poetry.Export(inv.dir, args)
	if err := scope.Restore(); err != nil {
		if exportErr != nil {
			ui.Error(cmd.ErrOrStderr(), "restoring manifest after failed export: %v", err)
			return exportErr
		}
		return err
	}
	return exportErr
}

// stageLock copies the shared root lock file next to the project manifest,
// returning a cleanup that removes the copy. Nothing is staged (and nothing
// removed) when the project already has a lock file or is the root itself.
func stageLock(ctx *monorepo.Context) (func(), error) {
	dst := filepath.Join(ctx.ProjectDir, monorepo.LockFilename)
	if dst == ctx.RootLockPath {
		return func() {}, nil
	}
	if _, err := os.Stat(dst); err == nil {
		return func() {}, nil
	}

	data, err := os.ReadFile(ctx.RootLockPath)
	if err != nil {
		return nil, fmt.Errorf("reading shared lock file: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return nil, fmt.Errorf("staging shared lock file: %w", err)
	}
	return func() { _ = os.Remove(dst) }, nil
}
