package diffexp

import (
	"sort"

	"github.com/carbocation/gespscan/gespset"
)

// Significance calls use the same fixed cutoffs everywhere.
const (
	FoldChangeCutoff = 1.0
	FDRCutoff        = 0.01
)

// Label is the significance call for one gene.
type Label string

const (
	Up             Label = "up"
	Down           Label = "down"
	NotSignificant Label = "not_significant"
)

// Classify maps a (log2FC, FDR) pair onto exactly one label.
func Classify(log2fc, fdr float64) Label {
	if fdr < FDRCutoff && log2fc > FoldChangeCutoff {
		return Up
	}
	if fdr < FDRCutoff && log2fc < -FoldChangeCutoff {
		return Down
	}

	return NotSignificant
}

// LabeledRecord is one GESP gene's labeled, annotated test result.
type LabeledRecord struct {
	Gene        string  `csv:"gene"`
	Indication  string  `csv:"indication"`
	Log2FC      float64 `csv:"log2_fc"`
	FDR         float64 `csv:"fdr"`
	Label       Label   `csv:"label"`
	EnzymeClass string  `csv:"enzyme_class"`
	GeneFamily  string  `csv:"gene_family"`
}

// LabelGESP joins test records against the GESP reference, keeping only
// genes flagged as surface-protein-encoding, labels each survivor, and
// attaches annotation lookups where present (absent genes keep empty
// annotation fields). Rows come back sorted by descending fold-change.
func LabelGESP(indication string, records []Record, ref *gespset.Reference, annots map[string]gespset.Annotation) []LabeledRecord {
	out := make([]LabeledRecord, 0, len(records))

	for _, rec := range records {
		if !ref.IsSurface(rec.Gene) {
			continue
		}

		ann := annots[rec.Gene]
		out = append(out, LabeledRecord{
			Gene:        rec.Gene,
			Indication:  indication,
			Log2FC:      rec.Log2FC,
			FDR:         rec.FDR,
			Label:       Classify(rec.Log2FC, rec.FDR),
			EnzymeClass: ann.EnzymeClass,
			GeneFamily:  ann.GeneFamily,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Log2FC > out[j].Log2FC
	})

	return out
}
