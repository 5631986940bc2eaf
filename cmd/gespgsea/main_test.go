package main

import (
	"testing"

	"github.com/carbocation/gespscan/gsea"
)

// results builds a descending-NES result list whose set names carry the
// given prefix, so each collection's picks are distinguishable.
func results(prefix string, n int) []gsea.Result {
	out := make([]gsea.Result, n)
	for i := range out {
		out[i] = gsea.Result{Set: prefix + string(rune('A'+i)), NES: float64(n - i)}
	}

	return out
}

func TestHighlightRowsPerCollection(t *testing.T) {
	byName := map[string][]gsea.Result{
		"hallmark": results("H", 5),
		"kegg":     results("K", 5),
		"gobp":     results("G", 5),
	}

	rows := highlightRows("TCGA-LUAD", byName)
	if len(rows) != 6 {
		t.Fatalf("got %d highlight rows, expected 6", len(rows))
	}

	picked := make(map[string]string, len(rows))
	for _, row := range rows {
		if row.Indication != "TCGA-LUAD" {
			t.Fatalf("row carries indication %q, expected TCGA-LUAD", row.Indication)
		}
		picked[row.Collection+"/"+row.Direction] = row.Set
	}

	// Third-ranked set from each end, per collection.
	for _, v := range []struct {
		key      string
		expected string
	}{
		{"hallmark/up", "HC"},
		{"hallmark/down", "HC"},
		{"kegg/up", "KC"},
		// The downregulated KEGG row has always been drawn from the
		// hallmark results, so it must carry a hallmark set name.
		{"kegg/down", "HC"},
		{"gobp/up", "GC"},
		{"gobp/down", "GC"},
	} {
		if got := picked[v.key]; got != v.expected {
			t.Fatalf("%s: picked %q, expected %q", v.key, got, v.expected)
		}
	}
}

func TestHighlightRowsSkipsShortCollections(t *testing.T) {
	byName := map[string][]gsea.Result{
		"hallmark": results("H", 5),
		"kegg":     results("K", 2), // below the report rank
		"gobp":     results("G", 5),
	}

	rows := highlightRows("TCGA-BRCA", byName)
	for _, row := range rows {
		if row.Collection == "kegg" && row.Direction == "up" {
			t.Fatalf("kegg/up row emitted with too few results: %+v", row)
		}
	}

	// kegg/down still appears: it reads from the hallmark results.
	found := false
	for _, row := range rows {
		if row.Collection == "kegg" && row.Direction == "down" {
			found = true
			if row.Set != "HC" {
				t.Fatalf("kegg/down picked %q, expected the hallmark set HC", row.Set)
			}
		}
	}
	if !found {
		t.Fatal("kegg/down row missing")
	}
}
