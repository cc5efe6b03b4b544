// Package appinventory assembles the per-app inventory and audit views
// consumed by the CLI: registry-derived program metadata enriched with a
// per-category disk usage breakdown, plus an aggregate health-style audit
// of the scan as a whole.
package appinventory

// AppBreakdownEntry is one disk-usage contributor to an AppRecord's total.
type AppBreakdownEntry struct {
	Kind  string   `json:"kind"`
	Label string   `json:"label"`
	Bytes uint64   `json:"bytes"`
	Paths []string `json:"paths"`
}

// AppRecord is one installed program enriched with its disk-usage
// breakdown across the install directory and every app-data root folder
// attributed to it.
type AppRecord struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Publisher  *string             `json:"publisher"`
	TotalBytes uint64              `json:"totalBytes"`
	Breakdown  []AppBreakdownEntry `json:"breakdown"`
}

// ScanProgress reports incremental scan status for a streaming consumer
// (the interactive CLI scan's progress spinner).
type ScanProgress struct {
	Phase   string `json:"phase"`
	Current uint32 `json:"current"`
	Total   uint32 `json:"total"`
	Message string `json:"message"`
}

// AuditRootSummary reports how many of one app-data root's immediate
// subfolders were attributed to an app versus left unassigned.
type AuditRootSummary struct {
	Kind              string `json:"kind"`
	AssignedFolders   uint32 `json:"assignedFolders"`
	UnassignedFolders uint32 `json:"unassignedFolders"`
}

// AuditDuplicateInstallLocation flags an install directory claimed by more
// than one distinct app name, usually a sign of a stale or partially
// re-registered install.
type AuditDuplicateInstallLocation struct {
	InstallDir string   `json:"installDir"`
	Apps       []string `json:"apps"`
}

// AuditUnassignedFolder is one app-data subfolder that no installed
// program's tokens matched, included in the audit's bounded preview list.
type AuditUnassignedFolder struct {
	Kind   string `json:"kind"`
	Folder string `json:"folder"`
	Path   string `json:"path"`
}

// AuditOverview summarizes the registry scan and folder attribution pass
// without computing any per-app disk usage, so it is cheap enough to run
// ahead of (or instead of) a full ScanApps pass.
type AuditOverview struct {
	AppCount                  uint32                          `json:"appCount"`
	UnknownProgramSizeCount   uint32                          `json:"unknownProgramSizeCount"`
	Roots                     []AuditRootSummary              `json:"roots"`
	DuplicateInstallLocations []AuditDuplicateInstallLocation `json:"duplicateInstallLocations"`
	UnassignedFolders         []AuditUnassignedFolder         `json:"unassignedFolders"`
}
