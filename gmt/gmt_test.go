package gmt

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRead(t *testing.T) {
	contents := "HALLMARK_APOPTOSIS\thttp://example.org/apoptosis\tCASP3\tCASP8\tBAX\n" +
		"HALLMARK_HYPOXIA\t\tVEGFA\tSLC2A1\n" +
		"\n"

	path := filepath.Join(t.TempDir(), "h.all.gmt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	sets, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(sets) != 2 {
		t.Fatalf("parsed %d sets, expected 2", len(sets))
	}
	if sets[0].Name != "HALLMARK_APOPTOSIS" || len(sets[0].Genes) != 3 {
		t.Fatalf("first set parsed wrong: %+v", sets[0])
	}
	if sets[1].Description != "" || len(sets[1].Genes) != 2 {
		t.Fatalf("second set parsed wrong: %+v", sets[1])
	}
}

func TestReadRejectsMemberlessLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gmt")
	if err := os.WriteFile(path, []byte("LONELY_SET\tdesc\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(path); err == nil {
		t.Fatal("expected an error for a set with no members")
	}
}
