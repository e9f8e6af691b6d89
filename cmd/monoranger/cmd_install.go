package main

import (
	"github.com/ag14774/monoranger/internal/poetry"
	"github.com/ag14774/monoranger/internal/ui"
	"github.com/spf13/cobra"
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [-- <install-flags>]",
		Short: "Install all monorepo dependencies into the shared environment",
		Args:  cobra.ArbitraryArgs,
		RunE:  runInstall,
	}
	cmd.Flags().Bool("sync", false, "Remove packages not tracked by the shared lock file")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runInstall(cmd *cobra.Command, args []string) error {
	sync, _ := cmd.Flags().GetBool("sync")

	inv, err := loadInvocation(cmd)
	if err != nil {
		return err
	}
	if !inv.active() {
		argv := []string{"install"}
		if sync {
			argv = append(argv, "--sync")
		}
		return inv.passthrough(append(argv, args...)...)
	}

	ctx, err := inv.resolve()
	if err != nil {
		return err
	}

	ui.Info(cmd.ErrOrStderr(), "Running install from monorepo root %s", ctx.Root)
	return poetry.Install(ctx.Root, poetry.InstallOpts{Sync: sync}, args...)
}
