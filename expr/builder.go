package expr

import (
	"fmt"
	"sort"

	"github.com/carbocation/pfx"
)

// Builder accumulates per-sample count maps into a Matrix. Genes absent
// from a sample's file get a zero count.
type Builder struct {
	counts  map[string]map[string]float64
	samples map[string]struct{}
}

func NewBuilder() *Builder {
	return &Builder{
		counts:  make(map[string]map[string]float64),
		samples: make(map[string]struct{}),
	}
}

// AddSample merges one sample's gene counts into the builder. A barcode
// may only be added once: a repeat would overwrite per-gene counts and
// leave a chimeric column.
func (b *Builder) AddSample(sample string, counts map[string]float64) error {
	if _, ok := b.samples[sample]; ok {
		return pfx.Err(fmt.Errorf("sample %s was already added", sample))
	}
	b.samples[sample] = struct{}{}

	for gene, val := range counts {
		if _, ok := b.counts[gene]; !ok {
			b.counts[gene] = make(map[string]float64)
		}
		b.counts[gene][sample] = val
	}

	return nil
}

// NumSamples reports how many distinct samples have been added.
func (b *Builder) NumSamples() int { return len(b.samples) }

// Matrix materializes the accumulated counts with sorted gene and sample
// axes.
func (b *Builder) Matrix() (*Matrix, error) {
	samples := make([]string, 0, len(b.samples))
	for s := range b.samples {
		samples = append(samples, s)
	}
	sort.Strings(samples)

	genes := make([]string, 0, len(b.counts))
	for g := range b.counts {
		genes = append(genes, g)
	}
	sort.Strings(genes)

	m := &Matrix{Genes: genes, Samples: samples, Values: make([][]float64, len(genes))}
	for i, gene := range genes {
		row := make([]float64, len(samples))
		for j, sample := range samples {
			row[j] = b.counts[gene][sample]
		}
		m.Values[i] = row
	}

	if err := m.checkShape(); err != nil {
		return nil, pfx.Err(err)
	}

	return m, nil
}
