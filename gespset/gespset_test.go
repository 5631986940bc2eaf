package gespset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestReadReferenceDetectsDelimiter(t *testing.T) {
	for _, v := range []struct {
		name     string
		contents string
	}{
		{"comma.csv", "gene,surface_protein\nMSLN,1\nEGFR,yes\nTP53,0\nGAPDH,no\n"},
		{"tab.tsv", "gene\tsurface_protein\nMSLN\t1\nEGFR\tyes\nTP53\t0\nGAPDH\tno\n"},
		{"semi.csv", "gene;surface_protein\nMSLN;1\nEGFR;yes\nTP53;0\nGAPDH;no\n"},
	} {
		path := writeTemp(t, v.name, v.contents)

		ref, err := ReadReference(path)
		if err != nil {
			t.Fatalf("%s: %v", v.name, err)
		}

		if ref.Len() != 4 {
			t.Fatalf("%s: loaded %d genes, expected 4", v.name, ref.Len())
		}
		if !ref.IsSurface("MSLN") || !ref.IsSurface("EGFR") {
			t.Fatalf("%s: flagged genes not recognized", v.name)
		}
		if ref.IsSurface("TP53") || ref.IsSurface("GAPDH") || ref.IsSurface("ABSENT") {
			t.Fatalf("%s: unflagged or absent genes reported as surface", v.name)
		}
	}
}

func TestReadAnnotations(t *testing.T) {
	path := writeTemp(t, "annot.csv", "gene,enzyme_class,gene_family\nMSLN,,GPI-anchored\nADAM17,protease,ADAM\n")

	annots, err := ReadAnnotations(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(annots) != 2 {
		t.Fatalf("loaded %d annotations, expected 2", len(annots))
	}
	if annots["ADAM17"].EnzymeClass != "protease" || annots["ADAM17"].GeneFamily != "ADAM" {
		t.Fatalf("ADAM17 annotation wrong: %+v", annots["ADAM17"])
	}
	if annots["MSLN"].EnzymeClass != "" {
		t.Fatalf("MSLN should have an empty enzyme class: %+v", annots["MSLN"])
	}
}
