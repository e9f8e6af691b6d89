package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ag14774/monoranger/internal/config"
	"github.com/ag14774/monoranger/internal/monorepo"
	"github.com/ag14774/monoranger/internal/poetry"
	"github.com/ag14774/monoranger/internal/pyproject"
	"github.com/ag14774/monoranger/internal/ui"
	"github.com/spf13/cobra"
)

// invocation carries the per-command state: the project directory the user
// invoked from, its manifest (nil outside a project), and plugin settings.
type invocation struct {
	dir      string
	manifest *pyproject.Manifest
	cfg      config.Config
}

// loadInvocation reads the -C/--directory flag, the project manifest and the
// plugin configuration. A directory without a manifest yields a disabled
// invocation so commands fall back to plain passthrough.
func loadInvocation(cmd *cobra.Command) (*invocation, error) {
	dirFlag, err := cmd.Root().PersistentFlags().GetString("directory")
	if err != nil {
		return nil, err
	}
	dir, err := filepath.Abs(dirFlag)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}

	inv := &invocation{dir: dir}
	if !pyproject.Exists(dir) {
		return inv, nil
	}

	m, err := pyproject.Load(dir)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(m)
	if err != nil {
		return nil, err
	}
	inv.manifest = m
	inv.cfg = cfg
	return inv, nil
}

// active reports whether monorepo redirection applies to this invocation.
func (inv *invocation) active() bool {
	return inv.manifest != nil && inv.cfg.Enabled
}

// resolve derives the monorepo context. Callers must have checked active().
func (inv *invocation) resolve() (*monorepo.Context, error) {
	return monorepo.Resolve(inv.manifest, inv.cfg)
}

// passthrough invokes the unmodified underlying command from the project
// directory, forwarding argv verbatim.
func (inv *invocation) passthrough(argv ...string) error {
	return poetry.Exec(inv.dir, argv)
}

// trackStrayLock returns a cleanup that removes a per-project lock file
// created as a side effect of a lock-only add/remove in the project
// directory. The shared root lock and pre-existing files are left alone.
func trackStrayLock(ctx *monorepo.Context) func() {
	path := filepath.Join(ctx.ProjectDir, monorepo.LockFilename)
	if path == ctx.RootLockPath {
		return func() {}
	}
	_, err := os.Stat(path)
	existedBefore := err == nil

	return func() {
		if existedBefore {
			return
		}
		if _, err := os.Stat(path); err == nil {
			_ = os.Remove(path)
		}
	}
}

// splitTargets separates the leading package names from the remaining raw
// arguments. Everything from the first "-"-prefixed token on is treated as
// pass-through flags for the underlying command; a flag's value cannot be
// told apart from a package name, so nothing after it is interpreted.
func splitTargets(args []string) (targets, rest []string) {
	for i, a := range args {
		if strings.HasPrefix(a, "-") {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

// warnStale reports the documented partial-failure window: the project
// manifest changed but the shared state was not refreshed.
func warnStale(w io.Writer, project string) {
	ui.Warn(w, "%s's manifest was updated, but the shared lock file and environment are stale; run 'monoranger lock' and 'monoranger install' to reconcile", project)
}
