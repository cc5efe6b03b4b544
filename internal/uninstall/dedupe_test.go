package uninstall

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cy-infamous/appsize/internal/textkey"
)

func strp(s string) *string { return &s }

func TestStripVersionSuffix(t *testing.T) {
	cases := map[string]string{
		"Foo Bar 1.2.3":   "Foo Bar",
		"Foo Bar (1.2.3)": "Foo Bar",
		"Foo Bar v1.2":    "Foo Bar",
		"Foo Bar 2024":    "Foo Bar 2024",
		"Foo 1":           "Foo 1",
	}
	for in, want := range cases {
		if got := stripVersionSuffix(in); got != want {
			t.Errorf("stripVersionSuffix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStripVersionSuffixIdempotent(t *testing.T) {
	inputs := []string{"Foo Bar 1.2.3", "Foo Bar (1.2.3)", "Foo Bar v1.2", "Foo Bar 2024", "Foo 1", "Plain Name"}
	for _, in := range inputs {
		once := stripVersionSuffix(in)
		twice := stripVersionSuffix(once)
		if once != twice {
			t.Errorf("not idempotent: stripVersionSuffix(%q)=%q, stripVersionSuffix(that)=%q", in, once, twice)
		}
	}
}

func TestNormalize(t *testing.T) {
	got := textkey.Normalize("JetBrains PyCharm 2024.1")
	want := "jetbrainspycharm20241"
	if got != want {
		t.Fatalf("textkey.Normalize(...) = %q, want %q", got, want)
	}
}

func TestDedupeMigratesBaseKeyToFullKeyOnInstallDir(t *testing.T) {
	dir := t.TempDir()
	installDir := filepath.Join(dir, "Foo")
	if err := os.MkdirAll(installDir, 0o755); err != nil {
		t.Fatal(err)
	}

	a := Entry{ID: "hklm64:A", Name: "Foo", Publisher: strp("Bar")}
	b := Entry{ID: "hkcu:B", Name: "Foo", Publisher: strp("Bar"), InstallLocation: strp(installDir)}

	out := Dedupe([]Entry{a, b})
	if len(out) != 1 {
		t.Fatalf("expected 1 canonical entry, got %d: %+v", len(out), out)
	}
	if out[0].InstallLocation == nil || *out[0].InstallLocation != installDir {
		t.Fatalf("expected install location %q, got %+v", installDir, out[0].InstallLocation)
	}
}

func TestDedupeMergeTakesMaxEstimatedBytes(t *testing.T) {
	a := Entry{ID: "hklm64:A", Name: "Foo", EstimatedBytes: 100}
	b := Entry{ID: "hklm32:B", Name: "Foo", EstimatedBytes: 500}

	out := Dedupe([]Entry{a, b})
	if len(out) != 1 {
		t.Fatalf("expected 1 canonical entry, got %d", len(out))
	}
	if out[0].EstimatedBytes != 500 {
		t.Fatalf("expected max estimated bytes 500, got %d", out[0].EstimatedBytes)
	}
}

func TestDedupeNoMergeWhenKeysDiffer(t *testing.T) {
	a := Entry{ID: "hklm64:A", Name: "Foo", Publisher: strp("Bar")}
	b := Entry{ID: "hklm64:B", Name: "Baz", Publisher: strp("Qux")}

	out := Dedupe([]Entry{a, b})
	if len(out) != 2 {
		t.Fatalf("expected 2 canonical entries, got %d", len(out))
	}
}

func TestEntryQualityPrefersInstallLocation(t *testing.T) {
	withLoc := Entry{Name: "X", InstallLocation: strp("C:\\X")}
	withoutLoc := Entry{Name: "XXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXX"}
	if entryQuality(withLoc) <= entryQuality(withoutLoc) {
		t.Fatalf("expected install-location entry to outscore a longer nameless one")
	}
}

func TestIsVersionLike(t *testing.T) {
	likes := []string{"1.2.3", "v1.2", "V2.0", "1.0.0-1", "2024.1"}
	for _, s := range likes {
		if !isVersionLike(s) {
			t.Errorf("isVersionLike(%q) = false, want true", s)
		}
	}
	notLikes := []string{"", "2024", "beta", "1", "v", "1.0.0-beta"}
	for _, s := range notLikes {
		if isVersionLike(s) {
			t.Errorf("isVersionLike(%q) = true, want false", s)
		}
	}
}

func TestGetInstallDirHintPrefersExistingInstallLocation(t *testing.T) {
	dir := t.TempDir()
	e := Entry{InstallLocation: strp(dir)}
	if got := GetInstallDirHint(e); got != dir {
		t.Fatalf("got %q want %q", got, dir)
	}
}

func TestParseDisplayIconDriveLetterTruncatesIndex(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "app.exe")
	if err := os.WriteFile(exe, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	icon := `"` + exe + `",0`
	got := parseDisplayIconToDir(icon)
	if got != dir {
		t.Fatalf("got %q want %q", got, dir)
	}
}

func TestParseDisplayIconNonDriveFormLeavesCommaIntact(t *testing.T) {
	// No ":\" present before the comma — the suffix is not stripped, so the
	// resulting string fails existence checks and resolves to empty. This
	// preserves the source implementation's documented asymmetry.
	got := parseDisplayIconToDir("some/relative/path,0")
	if got != "" {
		t.Fatalf("got %q want empty string", got)
	}
}
