// Package diffexp runs the tumor-vs-normal differential expression test
// for one indication and labels the results against the GESP reference.
package diffexp

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/carbocation/gespscan/expr"
)

// Record is one gene's test result within one indication.
type Record struct {
	Gene       string  `csv:"gene"`
	Log2FC     float64 `csv:"log2_fc"`
	PValue     float64 `csv:"p_value"`
	FDR        float64 `csv:"fdr"`
	MeanTumor  float64 `csv:"mean_tumor_log2cpm"`
	MeanNormal float64 `csv:"mean_normal_log2cpm"`
}

// Result is the outcome for one indication. Skipped results carry no
// records: with fewer than expr.MinNormalSamples normals there is no
// meaningful comparison, and no output file should be written.
type Result struct {
	Indication  string
	TumorCount  int
	NormalCount int
	Skipped     bool
	Records     []Record
}

// Run splits the (already normalized, log2-scale) matrix into tumor and
// normal columns, applies the sufficiency guard, and tests every gene with
// Welch's t-test, correcting across genes with Benjamini-Hochberg.
func Run(indication string, m *expr.Matrix) (*Result, error) {
	tumor, normal := m.SplitTumorNormal()

	res := &Result{
		Indication:  indication,
		TumorCount:  len(tumor),
		NormalCount: len(normal),
	}

	if len(normal) < expr.MinNormalSamples {
		res.Skipped = true
		return res, nil
	}

	seen := make(map[string]struct{}, len(m.Genes))
	pvals := make([]float64, 0, len(m.Genes))

	for i, gene := range m.Genes {
		if _, ok := seen[gene]; ok {
			return nil, pfx.Err(fmt.Errorf("%s: gene %s appears on more than one row", indication, gene))
		}
		seen[gene] = struct{}{}

		t := m.SubsetColumns(i, tumor)
		n := m.SubsetColumns(i, normal)

		meanT := stat.Mean(t, nil)
		meanN := stat.Mean(n, nil)
		p := welchT(t, n)

		res.Records = append(res.Records, Record{
			Gene:       gene,
			Log2FC:     meanT - meanN,
			PValue:     p,
			MeanTumor:  meanT,
			MeanNormal: meanN,
		})
		pvals = append(pvals, p)
	}

	for i, fdr := range BenjaminiHochberg(pvals) {
		res.Records[i].FDR = fdr
	}

	return res, nil
}

// welchT returns the two-tailed p-value of Welch's unequal-variance t-test.
func welchT(a, b []float64) float64 {
	if len(a) < 2 || len(b) < 2 {
		return 1
	}

	meanA, varA := stat.MeanVariance(a, nil)
	meanB, varB := stat.MeanVariance(b, nil)

	seA := varA / float64(len(a))
	seB := varB / float64(len(b))
	se := math.Sqrt(seA + seB)
	if se < 1e-15 {
		if meanA == meanB {
			return 1
		}
		return 0
	}

	t := (meanA - meanB) / se

	// Welch-Satterthwaite degrees of freedom.
	den := seA*seA/float64(len(a)-1) + seB*seB/float64(len(b)-1)
	if den < 1e-15 {
		return 1
	}
	df := (seA + seB) * (seA + seB) / den
	if df < 1 {
		df = 1
	}

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	return 2 * dist.CDF(-math.Abs(t))
}
