package expr

import (
	"math"
	"testing"
)

func TestBuilderZeroFills(t *testing.T) {
	b := NewBuilder()
	if err := b.AddSample("TCGA-AA-0001-01A", map[string]float64{"A": 1, "B": 2}); err != nil {
		t.Fatal(err)
	}
	if err := b.AddSample("TCGA-AA-0002-11A", map[string]float64{"B": 3}); err != nil {
		t.Fatal(err)
	}

	m, err := b.Matrix()
	if err != nil {
		t.Fatal(err)
	}

	if len(m.Genes) != 2 || len(m.Samples) != 2 {
		t.Fatalf("got %d genes x %d samples, expected 2x2", len(m.Genes), len(m.Samples))
	}

	// Genes and samples are sorted; gene A has no count in sample 2.
	if m.Genes[0] != "A" || m.Values[0][1] != 0 {
		t.Fatalf("expected zero-filled count for gene A in sample 2, got %+v", m.Values)
	}
}

func TestBuilderRejectsDuplicateSample(t *testing.T) {
	b := NewBuilder()
	if err := b.AddSample("TCGA-AA-0001-01A", map[string]float64{"A": 1}); err != nil {
		t.Fatal(err)
	}

	if err := b.AddSample("TCGA-AA-0001-01A", map[string]float64{"A": 7}); err == nil {
		t.Fatal("expected an error for a repeated sample barcode")
	}
}

func TestCPMAndLog2(t *testing.T) {
	m := &Matrix{
		Genes:   []string{"A", "B"},
		Samples: []string{"s1"},
		Values:  [][]float64{{250000}, {750000}},
	}

	m.CPM()
	if got, expected := m.Values[0][0], 250000.0; got != expected {
		t.Fatalf("CPM: got %f, expected %f", got, expected)
	}
	if got, expected := m.Values[1][0], 750000.0; got != expected {
		t.Fatalf("CPM: got %f, expected %f", got, expected)
	}

	m.Log2()
	if got, expected := m.Values[0][0], math.Log2(250001); math.Abs(got-expected) > 1e-9 {
		t.Fatalf("Log2: got %f, expected %f", got, expected)
	}
}

func TestFilterLowExpressed(t *testing.T) {
	m := &Matrix{
		Genes:   []string{"low", "mid1", "mid2", "high"},
		Samples: []string{"s1", "s2"},
		Values: [][]float64{
			{0.1, 0.1},
			{5, 5},
			{6, 6},
			{10, 10},
		},
	}

	filtered, err := m.FilterLowExpressed(0.5)
	if err != nil {
		t.Fatal(err)
	}

	for _, gene := range filtered.Genes {
		if gene == "low" {
			t.Fatalf("gene below the quantile cutoff survived filtering: %+v", filtered.Genes)
		}
	}
	if len(filtered.Genes) != 3 {
		t.Fatalf("got %d genes, expected 3: %+v", len(filtered.Genes), filtered.Genes)
	}
}

func TestSplitTumorNormal(t *testing.T) {
	m := &Matrix{
		Genes: []string{"A"},
		Samples: []string{
			"TCGA-AA-0001-01A-11R-A089-07",
			"TCGA-AA-0002-11A-11R-A089-07",
			"TCGA-AA-0003-06A-11R-A089-07", // metastatic: tumor
			"TCGA-AA-0004-20A-11R-A089-07", // control: neither
		},
		Values: [][]float64{{1, 2, 3, 4}},
	}

	tumor, normal := m.SplitTumorNormal()
	if len(tumor) != 2 || len(normal) != 1 {
		t.Fatalf("got %d tumor and %d normal columns, expected 2 and 1", len(tumor), len(normal))
	}

	if got := m.SubsetColumns(0, normal); got[0] != 2 {
		t.Fatalf("normal column subset: got %v, expected [2]", got)
	}
}
