package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cy-infamous/appsize/internal/appinventory"
	"github.com/cy-infamous/appsize/internal/hostdisk"
	"github.com/cy-infamous/appsize/internal/ui"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Summarize registry/folder-attribution health without measuring disk usage",
	Long: `Audit runs the registry scan and folder attribution pass without walking any
directories, reporting how many programs reported no size at all, which
install directories are claimed by more than one distinct program, and how
many app-data folders in each root went unclaimed.`,
	RunE: runAudit,
}

// unassignedPrintLimit caps how many unassigned folders the human-readable
// path prints; the full list is always present in --json output.
const unassignedPrintLimit = 20

func init() {
	auditCmd.Flags().Bool("json", false, "Print the audit overview as JSON")
}

func runAudit(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	overview := appinventory.AuditOverview()
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(overview)
	}

	printAuditOverview(overview)
	return nil
}

func printAuditOverview(o appinventory.AuditOverview) {
	fmt.Println()
	fmt.Printf("  %s %d installed application(s)\n", ui.IconBullet, o.AppCount)
	fmt.Printf("  %s %d with no known size\n", ui.IconBullet, o.UnknownProgramSizeCount)
	fmt.Println()

	for _, r := range o.Roots {
		fmt.Printf("  %-18s  assigned %-4d  unassigned %d\n", r.Kind, r.AssignedFolders, r.UnassignedFolders)
	}

	if len(o.DuplicateInstallLocations) > 0 {
		fmt.Println()
		fmt.Println(ui.WarningStyle().Render("  Duplicate install locations:"))
		for _, d := range o.DuplicateInstallLocations {
			fmt.Printf("    %s  %v\n", ui.FormatPath(d.InstallDir), d.Apps)
		}
	}

	if len(o.UnassignedFolders) > 0 {
		fmt.Println()
		fmt.Println(ui.MutedStyle().Render("  Unassigned folders:"))
		shown := o.UnassignedFolders
		if len(shown) > unassignedPrintLimit {
			shown = shown[:unassignedPrintLimit]
		}
		for _, f := range shown {
			fmt.Printf("    %-18s  %s\n", f.Kind, ui.FormatPath(f.Path))
		}
		if remaining := len(o.UnassignedFolders) - len(shown); remaining > 0 {
			fmt.Printf("    … and %d more (see --json)\n", remaining)
		}
	}

	if volumes := hostdisk.ListVolumes(); len(volumes) > 0 {
		fmt.Println()
		fmt.Println(ui.MutedStyle().Render("  Host volumes:"))
		for _, v := range volumes {
			used := v.TotalBytes - v.FreeBytes
			pct := 0.0
			if v.TotalBytes > 0 {
				pct = float64(used) / float64(v.TotalBytes) * 100
			}
			fmt.Printf("    %-6s %s / %s  %s\n",
				v.MountPoint, ui.FormatSizePlain(int64(used)), ui.FormatSizePlain(int64(v.TotalBytes)),
				ui.GradientBar(pct, 20))
		}
	}
	fmt.Println()
}
