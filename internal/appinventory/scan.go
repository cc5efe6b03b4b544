package appinventory

import (
	"sort"

	"github.com/cy-infamous/appsize/internal/matching"
	"github.com/cy-infamous/appsize/internal/roots"
	"github.com/cy-infamous/appsize/internal/sizing"
	"github.com/cy-infamous/appsize/internal/uninstall"
)

// ScanApps returns the full enriched app inventory in one call, discarding
// progress events. Equivalent to draining ScanAppsStream into a slice.
func ScanApps() []AppRecord {
	var out []AppRecord
	ScanAppsStream(func(ScanProgress) {}, func(r AppRecord) { out = append(out, r) })
	return out
}

// ScanAppsStream reads the uninstall registry, canonicalizes and sorts the
// entries, attributes app-data folders to each, then measures and reports
// one enriched AppRecord at a time via onRecord, with onProgress called
// before the first record, after each record, and once more on completion.
func ScanAppsStream(onProgress func(ScanProgress), onRecord func(AppRecord)) {
	entries := canonicalEntries()

	onProgress(ScanProgress{
		Phase:   "uninstall",
		Current: 0,
		Total:   uint32(len(entries)),
		Message: "Identified installed program list",
	})

	r := roots.Build()

	tokens := make([]matching.Tokens, len(entries))
	for i, e := range entries {
		tokens[i] = matching.BuildTokens(e.ID, e.Name, e.Publisher)
	}
	assigned := matching.AssignFolders(r, tokens)
	cache := sizing.NewCache()

	total := uint32(len(entries))
	if total == 0 {
		total = 1
	}

	for i, e := range entries {
		record := enrichWithBreakdown(e, assigned, cache)
		onRecord(record)
		onProgress(ScanProgress{
			Phase:   "scan",
			Current: uint32(i + 1),
			Total:   total,
			Message: "Measuring disk usage…",
		})
	}

	onProgress(ScanProgress{Phase: "done", Current: total, Total: total, Message: "Scan complete"})
}

// canonicalEntries reads, name-sorts, and dedupes the raw registry scan so
// every downstream consumer (tokenizing, folder assignment, breakdown
// ordering) observes the same deterministic entry order regardless of the
// nondeterministic order registry enumeration or map iteration produced it
// in.
func canonicalEntries() []uninstall.Entry {
	entries := uninstall.Scan()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return uninstall.Dedupe(entries)
}

func enrichWithBreakdown(e uninstall.Entry, assigned matching.AssignedFolders, cache *sizing.Cache) AppRecord {
	var breakdown []AppBreakdownEntry

	programBytes, programPaths, programLabel := programUsage(e, cache)
	breakdown = append(breakdown, AppBreakdownEntry{
		Kind:  "program",
		Label: programLabel,
		Bytes: programBytes,
		Paths: programPaths,
	})

	breakdown = appendRootBreakdown(breakdown, "appDataLocal", "App data (AppData/Local)", assigned.Local[e.ID], cache)
	breakdown = appendRootBreakdown(breakdown, "appDataRoaming", "App data (AppData/Roaming)", assigned.Roaming[e.ID], cache)
	breakdown = appendRootBreakdown(breakdown, "appDataLocalLow", "App data (AppData/LocalLow)", assigned.LocalLow[e.ID], cache)
	breakdown = appendRootBreakdown(breakdown, "programData", "Shared data (ProgramData)", assigned.ProgramData[e.ID], cache)

	var totalBytes uint64
	for _, b := range breakdown {
		totalBytes = saturatingAdd(totalBytes, b.Bytes)
	}

	return AppRecord{
		ID:         e.ID,
		Name:       e.Name,
		Publisher:  e.Publisher,
		TotalBytes: totalBytes,
		Breakdown:  breakdown,
	}
}

// programUsage prefers the registry's own EstimatedSize (fast, no disk
// walk) and only falls back to walking the install directory when the
// registry reported nothing.
func programUsage(e uninstall.Entry, cache *sizing.Cache) (uint64, []string, string) {
	if e.EstimatedBytes > 0 {
		return e.EstimatedBytes, nil, "Program (system estimate)"
	}

	dir := uninstall.GetInstallDirHint(e)
	if dir == "" {
		return 0, nil, "Program (directory scan)"
	}
	return sizing.DirectorySizeCached(dir, cache), []string{dir}, "Program (directory scan)"
}

func appendRootBreakdown(breakdown []AppBreakdownEntry, kind, label string, paths []string, cache *sizing.Cache) []AppBreakdownEntry {
	if len(paths) == 0 {
		return breakdown
	}
	bytes, shown := sizing.SumPaths(paths, cache)
	if bytes == 0 {
		return breakdown
	}
	return append(breakdown, AppBreakdownEntry{Kind: kind, Label: label, Bytes: bytes, Paths: shown})
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}
