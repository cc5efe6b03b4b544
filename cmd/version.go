package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cy-infamous/appsize/internal/core"
	"github.com/cy-infamous/appsize/internal/ui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("appsize %s (%s) built %s\n", appVersion, appCommit, appDate)
		if core.IsElevated() {
			fmt.Println(ui.WarningStyle().Render("  running elevated"))
		}
	},
}
