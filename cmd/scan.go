package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cy-infamous/appsize/internal/appinventory"
	"github.com/cy-infamous/appsize/internal/ui"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan installed applications and measure their disk usage",
	Long: `Scan reads the registry's uninstall entries, attributes AppData and
ProgramData folders to the owning application, and measures disk usage
for each one.

Examples:
  appsize scan                  Human-readable table, sorted by size
  appsize scan --json           Full inventory as a JSON array
  appsize scan --interactive    Live progress, then a filterable picker`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Bool("json", false, "Print the full inventory as JSON")
	scanCmd.Flags().Bool("interactive", false, "Show live progress, then browse results interactively")
}

func runScan(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	interactive, _ := cmd.Flags().GetBool("interactive")

	switch {
	case interactive:
		return runScanInteractive()
	case asJSON:
		return runScanJSON()
	default:
		return runScanTable()
	}
}

func runScanJSON() error {
	records := appinventory.ScanApps()
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func runScanTable() error {
	spin := ui.NewInlineSpinner()
	spin.Start("Scanning installed applications…")

	var records []appinventory.AppRecord
	appinventory.ScanAppsStream(func(appinventory.ScanProgress) {}, func(r appinventory.AppRecord) {
		records = append(records, r)
	})
	spin.Stop(fmt.Sprintf("Scanned %d application(s)", len(records)))

	printAppTable(records)
	return nil
}

func runScanInteractive() error {
	spin := ui.NewInlineSpinner()
	var records []appinventory.AppRecord

	appinventory.ScanAppsStream(func(p appinventory.ScanProgress) {
		if p.Phase == "uninstall" {
			spin.Start(p.Message)
			return
		}
		spin.Start(fmt.Sprintf("%s (%d/%d)", p.Message, p.Current, p.Total))
	}, func(r appinventory.AppRecord) {
		records = append(records, r)
	})
	spin.Stop(fmt.Sprintf("Scanned %d application(s)", len(records)))

	if len(records) == 0 {
		fmt.Println(ui.MutedStyle().Render("  No installed applications found."))
		return nil
	}

	entries := make([]ui.PickerEntry, len(records))
	byID := make(map[string]appinventory.AppRecord, len(records))
	for i, r := range records {
		publisher := ""
		if r.Publisher != nil {
			publisher = *r.Publisher
		}
		entries[i] = ui.PickerEntry{ID: r.ID, Name: r.Name, Publisher: publisher, TotalBytes: r.TotalBytes}
		byID[r.ID] = r
	}

	selected, err := ui.RunAppPicker(entries)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}
	if selected == nil {
		return nil
	}

	printAppDetail(byID[selected.ID])
	return nil
}

func printAppTable(records []appinventory.AppRecord) {
	sorted := make([]appinventory.AppRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].TotalBytes > sorted[j].TotalBytes })

	fmt.Println()
	for _, r := range sorted {
		publisher := ui.MutedStyle().Render("(unknown publisher)")
		if r.Publisher != nil && *r.Publisher != "" {
			publisher = ui.InfoStyle().Render(*r.Publisher)
		}
		fmt.Printf("  %-10s  %s  %s\n",
			ui.FormatSize(int64(r.TotalBytes)), r.Name, publisher)
	}
	fmt.Println()
}

func printAppDetail(r appinventory.AppRecord) {
	fmt.Println()
	fmt.Println(ui.HeaderStyle().Render(r.Name))
	if r.Publisher != nil && *r.Publisher != "" {
		fmt.Println(ui.MutedStyle().Render("  " + *r.Publisher))
	}
	fmt.Printf("  Total: %s\n\n", ui.FormatSize(int64(r.TotalBytes)))

	for _, b := range r.Breakdown {
		fmt.Printf("  %s %-28s %s\n", ui.IconBullet, b.Label, ui.FormatSize(int64(b.Bytes)))
		for _, p := range b.Paths {
			fmt.Println("      " + ui.FormatPath(p))
		}
	}
	fmt.Println()
}
