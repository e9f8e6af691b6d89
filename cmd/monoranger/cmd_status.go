package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ag14774/monoranger/internal/lock"
	"github.com/ag14774/monoranger/internal/pyproject"
	"github.com/ag14774/monoranger/internal/ui"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show monorepo projects and shared lock state",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type monorepoStatus struct {
	Root         string          `json:"root"`
	RewriteRule  string          `json:"rewrite_rule"`
	LockPresent  bool            `json:"lock_present"`
	LockPackages int             `json:"lock_packages,omitempty"`
	Projects     []projectStatus `json:"projects"`
}

type projectStatus struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Dir      string `json:"dir"`
	PathDeps int    `json:"path_deps"`
	Error    string `json:"error,omitempty"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	inv, err := loadInvocation(cmd)
	if err != nil {
		return err
	}
	if inv.manifest == nil {
		return fmt.Errorf("no %s found in %s", pyproject.Filename, inv.dir)
	}
	if !inv.cfg.Enabled {
		return fmt.Errorf("monoranger is not enabled for %s", inv.manifest.Name)
	}

	ctx, err := inv.resolve()
	if err != nil {
		return err
	}

	status := monorepoStatus{
		Root:        ctx.Root,
		RewriteRule: string(inv.cfg.VersionRewriteRule),
	}

	if _, err := os.Stat(ctx.RootLockPath); err == nil {
		status.LockPresent = true
		if lf, err := lock.Load(ctx.RootLockPath); err == nil {
			status.LockPackages = len(lf.Packages)
		}
	}

	projects, err := ctx.Projects()
	if err != nil {
		return err
	}
	for _, p := range projects {
		ps := projectStatus{Dir: p.Dir}
		if p.Err != nil {
			ps.Error = p.Err.Error()
		} else {
			ps.Name = p.Manifest.Name
			ps.Version = p.Manifest.Version
			for _, d := range p.Manifest.Dependencies {
				if d.Kind == pyproject.KindPath {
					ps.PathDeps++
				}
			}
		}
		status.Projects = append(status.Projects, ps)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	fmt.Fprintf(out, "Root: %s\n", status.Root)
	fmt.Fprintf(out, "Rewrite rule: %s\n", status.RewriteRule)
	if status.LockPresent {
		fmt.Fprintf(out, "Shared lock: %d packages\n\n", status.LockPackages)
	} else {
		fmt.Fprintf(out, "Shared lock: missing (run 'monoranger lock')\n\n")
	}

	tbl := ui.NewTable(out, "PROJECT", "VERSION", "PATH DEPS", "DIR")
	for _, p := range status.Projects {
		name := p.Name
		if p.Error != "" {
			name = "(invalid)"
		}
		tbl.Row(name, p.Version, p.PathDeps, relPath(ctx.Root, p.Dir))
	}
	return tbl.Flush()
}

func relPath(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return dir
	}
	return rel
}
