package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/label-intake/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// no config needed
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "label-intake %s\n", version.GitRelease)
			fmt.Fprintf(w, "  Go:     %s\n", version.GoInfo)
			fmt.Fprintf(w, "  Commit: %s\n", version.GitCommit)
			fmt.Fprintf(w, "  Date:   %s\n", version.GitCommitDate)
		},
	}
}
