package diffexp

import "sort"

// BenjaminiHochberg converts p-values to FDR-adjusted q-values, preserving
// input order.
func BenjaminiHochberg(pvals []float64) []float64 {
	n := len(pvals)
	if n == 0 {
		return nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return pvals[idx[i]] < pvals[idx[j]]
	})

	fdr := make([]float64, n)
	minima := 1.0
	for i := n - 1; i >= 0; i-- {
		orig := idx[i]
		adjusted := pvals[orig] * float64(n) / float64(i+1)
		if adjusted > 1 {
			adjusted = 1
		}
		if adjusted < minima {
			minima = adjusted
		} else {
			adjusted = minima
		}
		fdr[orig] = adjusted
	}

	return fdr
}
