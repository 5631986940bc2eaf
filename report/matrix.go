package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/carbocation/pfx"
)

// NA marks a gene x indication pair with no fold-change value (the gene
// was filtered out of, or never measured in, that indication).
const NA = "NA"

// FoldChange is the long (tidy) form of one matrix cell.
type FoldChange struct {
	Gene       string  `csv:"gene"`
	Indication string  `csv:"indication"`
	Log2FC     float64 `csv:"log2_fc"`
}

// FoldChangeMatrix is the genes x indications wide form. Missing cells are
// NaN and serialize as NA. Every gene-indication pair holds exactly one
// value or the missing marker.
type FoldChangeMatrix struct {
	Genes       []string
	Indications []string
	Values      [][]float64
}

// FromLong assembles the wide matrix from long-form rows, with gene and
// indication axes sorted. Duplicate cells are an error.
func FromLong(rows []FoldChange) (*FoldChangeMatrix, error) {
	geneSet := make(map[string]struct{})
	indSet := make(map[string]struct{})
	for _, r := range rows {
		geneSet[r.Gene] = struct{}{}
		indSet[r.Indication] = struct{}{}
	}

	m := &FoldChangeMatrix{}
	for g := range geneSet {
		m.Genes = append(m.Genes, g)
	}
	for ind := range indSet {
		m.Indications = append(m.Indications, ind)
	}
	sort.Strings(m.Genes)
	sort.Strings(m.Indications)

	geneIdx := make(map[string]int, len(m.Genes))
	for i, g := range m.Genes {
		geneIdx[g] = i
	}
	indIdx := make(map[string]int, len(m.Indications))
	for j, ind := range m.Indications {
		indIdx[ind] = j
	}

	m.Values = make([][]float64, len(m.Genes))
	for i := range m.Values {
		row := make([]float64, len(m.Indications))
		for j := range row {
			row[j] = math.NaN()
		}
		m.Values[i] = row
	}

	for _, r := range rows {
		i, j := geneIdx[r.Gene], indIdx[r.Indication]
		if !math.IsNaN(m.Values[i][j]) {
			return nil, pfx.Err(fmt.Errorf("duplicate fold-change for %s in %s", r.Gene, r.Indication))
		}
		m.Values[i][j] = r.Log2FC
	}

	return m, nil
}

// ToLong flattens the matrix back to long form, skipping missing cells.
// FromLong(m.ToLong()) reproduces m exactly.
func (m *FoldChangeMatrix) ToLong() []FoldChange {
	var out []FoldChange
	for i, gene := range m.Genes {
		for j, ind := range m.Indications {
			if math.IsNaN(m.Values[i][j]) {
				continue
			}
			out = append(out, FoldChange{Gene: gene, Indication: ind, Log2FC: m.Values[i][j]})
		}
	}

	return out
}

// WriteMatrixTSV writes the wide matrix with a gene column, one column per
// indication, and NA for missing cells.
func (m *FoldChangeMatrix) WriteMatrixTSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(append([]string{"gene"}, m.Indications...)); err != nil {
		return pfx.Err(err)
	}

	for i, gene := range m.Genes {
		rec := make([]string, 0, len(m.Indications)+1)
		rec = append(rec, gene)
		for _, v := range m.Values[i] {
			if math.IsNaN(v) {
				rec = append(rec, NA)
			} else {
				rec = append(rec, strconv.FormatFloat(v, 'f', 6, 64))
			}
		}
		if err := w.Write(rec); err != nil {
			return pfx.Err(err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// ReadMatrixTSV loads a matrix written by WriteMatrixTSV.
func ReadMatrixTSV(path string) (*FoldChangeMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'

	header, err := r.Read()
	if err != nil {
		return nil, pfx.Err(err)
	}
	if len(header) < 2 {
		return nil, pfx.Err(fmt.Errorf("%s: matrix has no indication columns", path))
	}

	m := &FoldChangeMatrix{Indications: header[1:]}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		m.Genes = append(m.Genes, rec[0])
		row := make([]float64, len(m.Indications))
		for j, field := range rec[1:] {
			if field == NA {
				row[j] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, pfx.Err(err)
			}
			row[j] = v
		}
		m.Values = append(m.Values, row)
	}

	return m, nil
}
