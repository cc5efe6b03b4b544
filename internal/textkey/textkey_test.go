package textkey

import "testing"

func TestNormalizeStripsNonAlnumAndLowercases(t *testing.T) {
	got := Normalize("Foo-Bar_123!")
	want := "foobar123"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestNormalizeNonASCIILetterDropped(t *testing.T) {
	got := Normalize("CafÉ")
	want := "caf"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFoldASCIILowercasesASCIILettersOnly(t *testing.T) {
	got := FoldASCII("Program Files (x86)")
	want := "program files (x86)"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFoldASCIILeavesNonASCIIUnchanged(t *testing.T) {
	got := FoldASCII("CafÉ")
	want := "cafÉ"
	if got != want {
		t.Fatalf("got %q want %q, non-ASCII letters must not follow Unicode case rules", got, want)
	}
}

func TestFoldASCIIDiffersFromUnicodeLower(t *testing.T) {
	// strings.ToLower would fold "É" to "é"; FoldASCII must not, since a
	// key built this way has to agree with roots.Build's fold of the same
	// directory name regardless of locale.
	got := FoldASCII("É")
	if got != "É" {
		t.Fatalf("got %q, expected non-ASCII rune passed through unchanged", got)
	}
}
