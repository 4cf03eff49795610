package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/tabula/pkg/settings"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print " + settings.CliBinaryName + " version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		v := settings.VersionInformation
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s, %s %s/%s)\n",
			settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime,
			runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	},
}
