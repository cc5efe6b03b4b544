package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cy-infamous/appsize/internal/appinventory"
	"github.com/cy-infamous/appsize/internal/ui"
)

var measureCmd = &cobra.Command{
	Use:   "measure <kind> <folder>",
	Short: "Measure a single app-data folder's size on demand",
	Long: `Measure walks one folder named by its root kind and folder key — the same
keys reported in "appsize audit"'s unassigned-folder list — and prints its
total size.

Valid kinds: appDataLocal, appDataRoaming, appDataLocalLow, programData.`,
	Args: cobra.ExactArgs(2),
	RunE: runMeasure,
}

func runMeasure(cmd *cobra.Command, args []string) error {
	kind, folder := args[0], args[1]
	bytes := appinventory.MeasureFolderSize(kind, folder)
	fmt.Printf("  %s  %s\n", ui.FormatSize(int64(bytes)), folder)
	return nil
}
