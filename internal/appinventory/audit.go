package appinventory

import (
	"sort"

	"github.com/cy-infamous/appsize/internal/matching"
	"github.com/cy-infamous/appsize/internal/roots"
	"github.com/cy-infamous/appsize/internal/sizing"
	"github.com/cy-infamous/appsize/internal/textkey"
	"github.com/cy-infamous/appsize/internal/uninstall"
)

// unassignedPreviewPerRoot caps how many unassigned folders are listed per
// root before the combined, globally-sorted list is truncated again.
const unassignedPreviewPerRoot = 80

// unassignedPreviewTotal caps the combined unassigned-folder preview across
// all roots, after sorting by path.
const unassignedPreviewTotal = 200

// AuditOverview runs the registry scan and folder attribution pass without
// measuring any disk usage, reporting aggregate health signals: how many
// programs reported no size at all, which install directories are claimed
// by more than one distinct program name, and how many app-data folders in
// each root went unclaimed.
func AuditOverview() AuditOverview {
	entries := canonicalEntries()

	tokens := make([]matching.Tokens, len(entries))
	for i, e := range entries {
		tokens[i] = matching.BuildTokens(e.ID, e.Name, e.Publisher)
	}
	r := roots.Build()

	var unknownProgramSizeCount uint32
	installDirToApps := make(map[string][]string)
	for _, e := range entries {
		hint := uninstall.GetInstallDirHint(e)
		if e.EstimatedBytes == 0 && hint == "" {
			unknownProgramSizeCount++
		}
		if hint != "" {
			key := textkey.FoldASCII(hint)
			installDirToApps[key] = append(installDirToApps[key], e.Name)
		}
	}

	duplicates := buildDuplicateInstallLocations(installDirToApps)

	ownersLocal := matching.BuildOwnerKeys(r.Local, tokens)
	ownersRoaming := matching.BuildOwnerKeys(r.Roaming, tokens)
	ownersLocalLow := matching.BuildOwnerKeys(r.LocalLow, tokens)
	ownersProgramData := matching.BuildOwnerKeys(r.ProgramData, tokens)

	var rootSummaries []AuditRootSummary
	var unassigned []AuditUnassignedFolder

	rootSummaries, unassigned = appendRootAudit(rootSummaries, unassigned, "appDataLocal", r.Local, ownersLocal)
	rootSummaries, unassigned = appendRootAudit(rootSummaries, unassigned, "appDataRoaming", r.Roaming, ownersRoaming)
	rootSummaries, unassigned = appendRootAudit(rootSummaries, unassigned, "appDataLocalLow", r.LocalLow, ownersLocalLow)
	rootSummaries, unassigned = appendRootAudit(rootSummaries, unassigned, "programData", r.ProgramData, ownersProgramData)

	sort.Slice(unassigned, func(i, j int) bool { return unassigned[i].Path < unassigned[j].Path })
	if len(unassigned) > unassignedPreviewTotal {
		unassigned = unassigned[:unassignedPreviewTotal]
	}

	return AuditOverview{
		AppCount:                  uint32(len(entries)),
		UnknownProgramSizeCount:   unknownProgramSizeCount,
		Roots:                     rootSummaries,
		DuplicateInstallLocations: duplicates,
		UnassignedFolders:         unassigned,
	}
}

func buildDuplicateInstallLocations(installDirToApps map[string][]string) []AuditDuplicateInstallLocation {
	var out []AuditDuplicateInstallLocation
	for dir, apps := range installDirToApps {
		apps = dedupeSortedStrings(apps)
		if len(apps) <= 1 {
			continue
		}
		out = append(out, AuditDuplicateInstallLocation{InstallDir: dir, Apps: apps})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Apps) != len(out[j].Apps) {
			return len(out[i].Apps) > len(out[j].Apps)
		}
		return out[i].InstallDir < out[j].InstallDir
	})
	return out
}

func dedupeSortedStrings(in []string) []string {
	sort.Strings(in)
	out := in[:0:0]
	for _, s := range in {
		if len(out) == 0 || out[len(out)-1] != s {
			out = append(out, s)
		}
	}
	return out
}

func appendRootAudit(
	summaries []AuditRootSummary,
	unassigned []AuditUnassignedFolder,
	kind string,
	root *roots.RootFolders,
	owners map[string]string,
) ([]AuditRootSummary, []AuditUnassignedFolder) {
	if root == nil {
		return summaries, unassigned
	}

	var unassignedKeys []string
	for k := range root.Folders {
		if _, owned := owners[k]; !owned {
			unassignedKeys = append(unassignedKeys, k)
		}
	}
	sort.Strings(unassignedKeys)

	summaries = append(summaries, AuditRootSummary{
		Kind:              kind,
		AssignedFolders:   uint32(len(owners)),
		UnassignedFolders: uint32(len(unassignedKeys)),
	})

	limit := unassignedPreviewPerRoot
	if len(unassignedKeys) < limit {
		limit = len(unassignedKeys)
	}
	for _, k := range unassignedKeys[:limit] {
		unassigned = append(unassigned, AuditUnassignedFolder{
			Kind:   kind,
			Folder: k,
			Path:   root.Folders[k],
		})
	}

	return summaries, unassigned
}

// MeasureFolderSize walks the single app-data folder named by kind and
// folder (a folder key as reported in an AuditUnassignedFolder or
// AssignFolders result) and returns its total size, or 0 if kind or folder
// does not resolve to a folder present on this host.
func MeasureFolderSize(kind, folder string) uint64 {
	r := roots.Build()
	key := textkey.FoldASCII(folder)

	var root *roots.RootFolders
	switch kind {
	case "appDataLocal":
		root = r.Local
	case "appDataRoaming":
		root = r.Roaming
	case "appDataLocalLow":
		root = r.LocalLow
	case "programData":
		root = r.ProgramData
	}
	if root == nil {
		return 0
	}

	path, ok := root.Folders[key]
	if !ok {
		return 0
	}
	return sizing.DirectorySize(path)
}
