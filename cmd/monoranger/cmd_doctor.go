package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/ag14774/monoranger/internal/rewrite"
	"github.com/ag14774/monoranger/internal/ui"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the monorepo setup for common issues",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	ok := true

	fmt.Fprint(out, "Checking poetry... ")
	if path, err := exec.LookPath("poetry"); err != nil {
		fmt.Fprintln(out, "NOT FOUND")
		fmt.Fprintln(out, "  poetry is required. Install it from https://python-poetry.org/")
		ok = false
	} else {
		fmt.Fprintf(out, "found at %s\n", path)
	}

	fmt.Fprint(out, "Checking project manifest... ")
	inv, err := loadInvocation(cmd)
	switch {
	case err != nil:
		fmt.Fprintf(out, "ERROR: %v\n", err)
		ok = false
	case inv.manifest == nil:
		fmt.Fprintln(out, "not found (not a project directory)")
		ok = false
	default:
		fmt.Fprintf(out, "%s %s\n", inv.manifest.Name, inv.manifest.Version)
	}

	if inv != nil && inv.manifest != nil {
		fmt.Fprint(out, "Checking plugin config... ")
		if !inv.cfg.Enabled {
			fmt.Fprintln(out, "disabled ([tool.monoranger] enabled = false)")
		} else {
			fmt.Fprintf(out, "enabled (root %q, rule %q)\n", inv.cfg.MonorepoRoot, inv.cfg.VersionRewriteRule)
		}

		if inv.cfg.Enabled {
			ok = checkMonorepo(inv, out) && ok
		}
	}

	fmt.Fprintln(out)
	if ok {
		ui.Success(out, "All checks passed.")
		return nil
	}
	ui.Error(out, "Some checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

func checkMonorepo(inv *invocation, out io.Writer) bool {
	ok := true

	fmt.Fprint(out, "Checking monorepo root... ")
	ctx, err := inv.resolve()
	if err != nil {
		fmt.Fprintf(out, "ERROR: %v\n", err)
		return false
	}
	fmt.Fprintln(out, ctx.Root)

	fmt.Fprint(out, "Checking shared lock file... ")
	if _, err := os.Stat(ctx.RootLockPath); err == nil {
		fmt.Fprintln(out, "present")
	} else {
		fmt.Fprintln(out, "missing (run 'monoranger lock')")
	}

	fmt.Fprint(out, "Checking path dependencies... ")
	if _, _, err := rewrite.Pin(inv.manifest, ctx.Root, inv.cfg.VersionRewriteRule); err != nil {
		fmt.Fprintf(out, "ERROR: %v\n", err)
		ok = false
	} else {
		fmt.Fprintln(out, "pinnable")
	}

	return ok
}
