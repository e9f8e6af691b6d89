package main

import (
	"fmt"

	"github.com/ag14774/monoranger/internal/poetry"
	"github.com/spf13/cobra"
)

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the path of the shared monorepo environment",
		Args:  cobra.NoArgs,
		RunE:  runEnv,
	}
}

func runEnv(cmd *cobra.Command, _ []string) error {
	inv, err := loadInvocation(cmd)
	if err != nil {
		return err
	}
	if !inv.active() {
		return inv.passthrough("env", "info", "--path")
	}

	ctx, err := inv.resolve()
	if err != nil {
		return err
	}

	path, err := poetry.EnvPath(ctx.Root)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}
