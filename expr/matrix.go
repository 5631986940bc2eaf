// Package expr holds the per-indication expression matrix and its
// normalization and filtering steps.
package expr

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/carbocation/gespscan/tcga"
)

// MinNormalSamples is the data-sufficiency floor: with fewer solid-tissue
// normals than this, a tumor-vs-normal comparison is not run.
const MinNormalSamples = 10

// Matrix is a genes x samples expression matrix for one indication.
// Genes and Samples are sorted and unique; Values is row-major with one
// row per gene.
type Matrix struct {
	Genes   []string
	Samples []string
	Values  [][]float64
}

// Row returns the values for gene i across all samples.
func (m *Matrix) Row(i int) []float64 { return m.Values[i] }

// Column returns a copy of the values for sample j across all genes.
func (m *Matrix) Column(j int) []float64 {
	out := make([]float64, len(m.Genes))
	for i := range m.Genes {
		out[i] = m.Values[i][j]
	}

	return out
}

// CPM scales each sample's counts to counts-per-million in place.
func (m *Matrix) CPM() {
	for j := range m.Samples {
		var libSize float64
		for i := range m.Genes {
			libSize += m.Values[i][j]
		}
		if libSize == 0 {
			continue
		}

		for i := range m.Genes {
			m.Values[i][j] = m.Values[i][j] / libSize * 1e6
		}
	}
}

// Log2 applies log2(x+1) in place.
func (m *Matrix) Log2() {
	for i := range m.Values {
		for j := range m.Values[i] {
			m.Values[i][j] = math.Log2(m.Values[i][j] + 1)
		}
	}
}

// FilterLowExpressed drops genes whose mean expression falls below the
// q-th quantile of per-gene means (q in [0,1]), returning a new matrix
// that shares the retained rows.
func (m *Matrix) FilterLowExpressed(q float64) (*Matrix, error) {
	means := make([]float64, len(m.Genes))
	for i := range m.Genes {
		means[i] = stat.Mean(m.Values[i], nil)
	}

	cutoff, err := stats.Percentile(stats.Float64Data(means), q*100)
	if err != nil {
		return nil, pfx.Err(err)
	}

	out := &Matrix{Samples: m.Samples}
	for i, gene := range m.Genes {
		if means[i] < cutoff {
			continue
		}
		out.Genes = append(out.Genes, gene)
		out.Values = append(out.Values, m.Values[i])
	}

	return out, nil
}

// SplitTumorNormal partitions sample columns by their TCGA sample-type
// code. Samples that are neither tumor nor normal (e.g. metastatic or
// control aliquots) are left out of both groups.
func (m *Matrix) SplitTumorNormal() (tumor, normal []int) {
	for j, barcode := range m.Samples {
		switch {
		case tcga.IsTumor(barcode):
			tumor = append(tumor, j)
		case tcga.IsNormal(barcode):
			normal = append(normal, j)
		}
	}

	return tumor, normal
}

// SubsetColumns extracts the named column indices for gene i.
func (m *Matrix) SubsetColumns(i int, cols []int) []float64 {
	out := make([]float64, len(cols))
	for k, j := range cols {
		out[k] = m.Values[i][j]
	}

	return out
}

func (m *Matrix) checkShape() error {
	for i := range m.Values {
		if len(m.Values[i]) != len(m.Samples) {
			return pfx.Err(fmt.Errorf("gene %s has %d values for %d samples", m.Genes[i], len(m.Values[i]), len(m.Samples)))
		}
	}

	return nil
}
