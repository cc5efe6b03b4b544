package roots

import (
	"os"
	"path/filepath"
	"testing"
)

func mkChildDirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.MkdirAll(filepath.Join(root, n), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", n, err)
		}
	}
}

func TestBuildLocalPresentAndCaseFolded(t *testing.T) {
	dir := t.TempDir()
	mkChildDirs(t, dir, "JetBrains", "Notion", "some-Mixed-Case")
	// a plain file should be skipped
	if err := os.WriteFile(filepath.Join(dir, "not-a-dir.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LOCALAPPDATA", dir)
	t.Setenv("APPDATA", "")
	t.Setenv("USERPROFILE", "")
	t.Setenv("PROGRAMDATA", "")

	r := Build()
	if r.Local == nil {
		t.Fatal("expected Local root to be present")
	}
	if r.Roaming != nil || r.LocalLow != nil || r.ProgramData != nil {
		t.Fatal("expected other roots to be absent")
	}

	want := map[string]string{
		"jetbrains":        filepath.Join(dir, "JetBrains"),
		"notion":           filepath.Join(dir, "Notion"),
		"some-mixed-case":  filepath.Join(dir, "some-Mixed-Case"),
	}
	if len(r.Local.Folders) != len(want) {
		t.Fatalf("got %d folders, want %d: %v", len(r.Local.Folders), len(want), r.Local.Folders)
	}
	for k, v := range want {
		got, ok := r.Local.Folders[k]
		if !ok {
			t.Fatalf("missing key %q in %v", k, r.Local.Folders)
		}
		if got != v {
			t.Fatalf("key %q: got %q want %q", k, got, v)
		}
	}
	if _, ok := r.Local.Folders["not-a-dir.txt"]; ok {
		t.Fatal("file entries must not appear in folders map")
	}
}

func TestBuildMissingEnvVarYieldsAbsentRoot(t *testing.T) {
	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("APPDATA", "")
	t.Setenv("USERPROFILE", "")
	t.Setenv("PROGRAMDATA", "")

	r := Build()
	if r.Local != nil || r.Roaming != nil || r.LocalLow != nil || r.ProgramData != nil {
		t.Fatal("expected all roots absent when env vars are unset")
	}
}

func TestBuildNonDirectoryPathYieldsAbsentRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "afile")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOCALAPPDATA", file)
	t.Setenv("APPDATA", "")
	t.Setenv("USERPROFILE", "")
	t.Setenv("PROGRAMDATA", "")

	r := Build()
	if r.Local != nil {
		t.Fatal("expected Local root absent when LOCALAPPDATA names a file")
	}
}

func TestFoldASCIINonASCIIPassesThrough(t *testing.T) {
	dir := t.TempDir()
	mkChildDirs(t, dir, "Café")
	t.Setenv("LOCALAPPDATA", dir)
	t.Setenv("APPDATA", "")
	t.Setenv("USERPROFILE", "")
	t.Setenv("PROGRAMDATA", "")

	r := Build()
	if r.Local == nil {
		t.Fatal("expected Local root present")
	}
	if _, ok := r.Local.Folders["café"]; !ok {
		t.Fatalf("expected non-ASCII rune to pass through unchanged: %v", r.Local.Folders)
	}
}
