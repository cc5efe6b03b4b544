package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version info populated from main.
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "appsize",
	Short: "See what's using disk space under your installed applications",
	Long: `appsize - installed application disk usage inventory for Windows.

Reads the registry's uninstall entries, attributes AppData and ProgramData
folders to the program that owns them by name/publisher similarity, and
reports a size breakdown per application.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(measureCmd)
	rootCmd.AddCommand(versionCmd)
}
