// Package gsea implements preranked gene-set enrichment: the weighted
// Kolmogorov-Smirnov running-sum statistic with a gene-label permutation
// null, normalized to NES.
package gsea

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/carbocation/pfx"

	"github.com/carbocation/gespscan/gmt"
)

// Gene sets outside these bounds (after intersecting with the ranked list)
// are not tested.
const (
	MinSetSize = 15
	MaxSetSize = 500
)

// RankedGene pairs a gene with its ranking score (here, log2 fold-change).
type RankedGene struct {
	Gene  string
	Score float64
}

// Result is the enrichment outcome for one gene set.
type Result struct {
	Set      string  `csv:"set"`
	Size     int     `csv:"size"`
	ES       float64 `csv:"es"`
	NES      float64 `csv:"nes"`
	NominalP float64 `csv:"p_value"`
}

// Preranked scores every gene set against the ranked list. The list is
// sorted by descending score internally, so callers may pass it unordered.
// Results are deterministic for a fixed seed.
func Preranked(ranked []RankedGene, sets []gmt.GeneSet, nperm int, seed int64) ([]Result, error) {
	if len(ranked) == 0 {
		return nil, pfx.Err(fmt.Errorf("empty ranking"))
	}

	ordered := make([]RankedGene, len(ranked))
	copy(ordered, ranked)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	pos := make(map[string]int, len(ordered))
	scores := make([]float64, len(ordered))
	for i, rg := range ordered {
		pos[rg.Gene] = i
		scores[i] = rg.Score
	}

	rng := rand.New(rand.NewSource(seed))

	var out []Result
	for _, set := range sets {
		member := make([]bool, len(ordered))
		size := 0
		for _, gene := range set.Genes {
			if i, ok := pos[gene]; ok && !member[i] {
				member[i] = true
				size++
			}
		}
		if size < MinSetSize || size > MaxSetSize {
			continue
		}

		es := enrichmentScore(scores, member)

		// Permutation null: shuffle which ranks count as members.
		var sameSignSum float64
		sameSignN := 0
		exceed := 0
		perm := make([]bool, len(member))
		for p := 0; p < nperm; p++ {
			shuffleMask(rng, perm, size)
			nullES := enrichmentScore(scores, perm)
			if (nullES >= 0) == (es >= 0) {
				sameSignSum += math.Abs(nullES)
				sameSignN++
				if math.Abs(nullES) >= math.Abs(es) {
					exceed++
				}
			}
		}

		nes := 0.0
		if sameSignN > 0 && sameSignSum > 0 {
			nes = es / (sameSignSum / float64(sameSignN))
		}

		out = append(out, Result{
			Set:      set.Name,
			Size:     size,
			ES:       es,
			NES:      nes,
			NominalP: (float64(exceed) + 1) / (float64(sameSignN) + 1),
		})
	}

	return out, nil
}

// enrichmentScore walks the ranking, stepping up by |score| at member genes
// and down by a constant at non-members, returning the extremum of the
// running sum.
func enrichmentScore(scores []float64, member []bool) float64 {
	var sumHit float64
	nMiss := 0
	for i, m := range member {
		if m {
			sumHit += math.Abs(scores[i])
		} else {
			nMiss++
		}
	}
	if sumHit == 0 || nMiss == 0 {
		return 0
	}

	missStep := 1 / float64(nMiss)

	var running, extremum float64
	for i := range scores {
		if member[i] {
			running += math.Abs(scores[i]) / sumHit
		} else {
			running -= missStep
		}
		if math.Abs(running) > math.Abs(extremum) {
			extremum = running
		}
	}

	return extremum
}

// shuffleMask fills mask with exactly size true entries at random positions.
func shuffleMask(rng *rand.Rand, mask []bool, size int) {
	for i := range mask {
		mask[i] = i < size
	}
	rng.Shuffle(len(mask), func(i, j int) {
		mask[i], mask[j] = mask[j], mask[i]
	})
}
