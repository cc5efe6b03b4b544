package appinventory

import (
	"testing"

	"github.com/cy-infamous/appsize/internal/roots"
)

func TestBuildDuplicateInstallLocationsFiltersSingleApp(t *testing.T) {
	in := map[string][]string{
		`c:\foo`: {"Foo"},
		`c:\bar`: {"Bar 1", "Bar 2"},
	}
	out := buildDuplicateInstallLocations(in)
	if len(out) != 1 {
		t.Fatalf("expected 1 duplicate location, got %d: %+v", len(out), out)
	}
	if out[0].InstallDir != `c:\bar` {
		t.Fatalf("InstallDir = %q", out[0].InstallDir)
	}
	if len(out[0].Apps) != 2 {
		t.Fatalf("Apps = %v, want 2 entries", out[0].Apps)
	}
}

func TestBuildDuplicateInstallLocationsDedupesRepeatedAppName(t *testing.T) {
	in := map[string][]string{
		`c:\foo`: {"Foo", "Foo"},
	}
	out := buildDuplicateInstallLocations(in)
	if len(out) != 0 {
		t.Fatalf("expected no duplicate locations once repeated names collapse to one, got %+v", out)
	}
}

func TestAppendRootAuditNilRootIsNoop(t *testing.T) {
	summaries, unassigned := appendRootAudit(nil, nil, "appDataLocal", nil, nil)
	if len(summaries) != 0 || len(unassigned) != 0 {
		t.Fatalf("expected no-op for a nil root")
	}
}

func TestAppendRootAuditCountsAssignedAndUnassigned(t *testing.T) {
	root := &roots.RootFolders{
		Folders: map[string]string{
			"owned":     `C:\AppData\Roaming\Owned`,
			"unclaimed": `C:\AppData\Roaming\Unclaimed`,
		},
	}
	owners := map[string]string{"owned": "app-1"}

	summaries, unassigned := appendRootAudit(nil, nil, "appDataRoaming", root, owners)
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].AssignedFolders != 1 || summaries[0].UnassignedFolders != 1 {
		t.Fatalf("summary = %+v", summaries[0])
	}
	if len(unassigned) != 1 || unassigned[0].Folder != "unclaimed" {
		t.Fatalf("unassigned = %+v", unassigned)
	}
}

func TestMeasureFolderSizeUnknownKindIsZero(t *testing.T) {
	if got := MeasureFolderSize("notAKind", "whatever"); got != 0 {
		t.Fatalf("got %d want 0", got)
	}
}
