package gdc

import (
	"os"
	"path/filepath"
	"testing"
)

const starFixture = `# gene-model: GENCODE v36
gene_id	gene_name	gene_type	unstranded	stranded_first	stranded_second
N_unmapped			2231125	2231125	2231125
N_multimapping			1481522	1481522	1481522
N_noFeature			529578	9710816	9688284
N_ambiguous			4357152	1277861	1278712
ENSG00000000003.15	TSPAN6	protein_coding	3927	1945	1982
ENSG00000000005.6	TNMD	protein_coding	12	7	5
ENSG00000999999.1	TSPAN6	protein_coding	100	50	50
`

func TestParseSTARCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.tsv")
	if err := os.WriteFile(path, []byte(starFixture), 0o644); err != nil {
		t.Fatal(err)
	}

	counts, err := ParseSTARCounts(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(counts) != 2 {
		t.Fatalf("parsed %d genes, expected 2: %+v", len(counts), counts)
	}

	// Two ENSG rows map to TSPAN6 and should be summed.
	if got, expected := counts["TSPAN6"], 4027.0; got != expected {
		t.Fatalf("TSPAN6: got %f, expected %f", got, expected)
	}
	if got, expected := counts["TNMD"], 12.0; got != expected {
		t.Fatalf("TNMD: got %f, expected %f", got, expected)
	}
}

func TestParseSTARCountsWithoutComment(t *testing.T) {
	fixture := `gene_id	gene_name	gene_type	unstranded	stranded_first	stranded_second
ENSG00000000003.15	TSPAN6	protein_coding	3927	1945	1982
`
	path := filepath.Join(t.TempDir(), "counts.tsv")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}

	counts, err := ParseSTARCounts(path)
	if err != nil {
		t.Fatal(err)
	}

	if got, expected := counts["TSPAN6"], 3927.0; got != expected {
		t.Fatalf("TSPAN6: got %f, expected %f", got, expected)
	}
}
