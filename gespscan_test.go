package gespscan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetermineDelimiter(t *testing.T) {
	for _, v := range []struct {
		contents string
		expected rune
	}{
		{"gene,flag\nMSLN,1\nEGFR,0\n", ','},
		{"gene\tflag\nMSLN\t1\nEGFR\t0\n", '\t'},
		{"gene;flag\nMSLN;1\nEGFR;0\n", ';'},
		{"no delimiters here\n", ','},
	} {
		if got := DetermineDelimiter(strings.NewReader(v.contents)); got != v.expected {
			t.Fatalf("%q: detected %q, expected %q", v.contents, got, v.expected)
		}
	}
}

func TestOpenFileOrURLReadsLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.csv")
	if err := os.WriteFile(path, []byte("gene,flag\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := OpenFileOrURL(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "gene,flag\n" {
		t.Fatalf("read %q, expected the file contents back", got)
	}

	if _, err := OpenFileOrURL(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
