package gsea

import "sort"

// HighlightRow is one line of the cross-collection highlights table fed to
// the slide deck.
type HighlightRow struct {
	Indication string  `csv:"indication"`
	Collection string  `csv:"collection"`
	Direction  string  `csv:"direction"`
	Set        string  `csv:"set"`
	NES        float64 `csv:"nes"`
	NominalP   float64 `csv:"p_value"`
}

// reportRank selects the highlighted pathway from each end of the NES
// ranking. The deck has always shown the third-ranked set, not the first.
// TODO: confirm with the analysis author whether rank 3 is intentional or
// should be rank 1.
const reportRank = 3

// TopByNES returns the reportRank-th result by descending NES, or false if
// there are too few results.
func TopByNES(results []Result) (Result, bool) {
	return nthByNES(results, true)
}

// BottomByNES returns the reportRank-th result by ascending NES, or false
// if there are too few results.
func BottomByNES(results []Result) (Result, bool) {
	return nthByNES(results, false)
}

func nthByNES(results []Result, descending bool) (Result, bool) {
	if len(results) < reportRank {
		return Result{}, false
	}

	sorted := make([]Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].NES > sorted[j].NES
		}
		return sorted[i].NES < sorted[j].NES
	})

	return sorted[reportRank-1], true
}
