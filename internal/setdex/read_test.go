package setdex

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"setdex/internal/testsupport"
)

func TestReadAnalysisStripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Mew.txt")
	testsupport.WriteBytes(t, path, append([]byte{0xEF, 0xBB, 0xBF}, []byte("name: Offensive\r\nnature: Timid\r\n")...))

	got, err := readAnalysis(path)
	if err != nil {
		t.Fatalf("readAnalysis: %v", err)
	}
	if diff := cmp.Diff([]string{"name: Offensive", "nature: Timid"}, got); diff != "" {
		t.Fatalf("lines (-want +got):\n%s", diff)
	}
}

func TestReadAnalysisDecodesLegacyBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Flabebe.txt")
	testsupport.WriteBytes(t, path, []byte("name: Pok\xe9mon\n"))

	got, err := readAnalysis(path)
	if err != nil {
		t.Fatalf("readAnalysis: %v", err)
	}
	if len(got) != 1 || got[0] != "name: Pokémon" {
		t.Fatalf("lines = %q", got)
	}
}

func TestReadAnalysisUTF16(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Mew.txt")
	// "ab\n" in UTF-16LE with a byte order mark.
	testsupport.WriteBytes(t, path, []byte{0xFF, 0xFE, 'a', 0, 'b', 0, '\n', 0})

	got, err := readAnalysis(path)
	if err != nil {
		t.Fatalf("readAnalysis: %v", err)
	}
	if diff := cmp.Diff([]string{"ab"}, got); diff != "" {
		t.Fatalf("lines (-want +got):\n%s", diff)
	}
}

func TestReadAnalysisMissingFile(t *testing.T) {
	if _, err := readAnalysis(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
