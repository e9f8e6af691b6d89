package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "monoranger",
		Short:         "Monorepo front-end for Poetry with a shared lock file and environment",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringP("directory", "C", ".", "Run as if invoked from this project directory")

	cmd.AddCommand(
		newLockCmd(),
		newInstallCmd(),
		newUpdateCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newBuildCmd(),
		newExportCmd(),
		newRunCmd(),
		newEnvCmd(),
		newStatusCmd(),
		newDoctorCmd(),
	)

	return cmd
}
