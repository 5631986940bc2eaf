package report

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ClusterOrder reorders row indices by average-linkage agglomerative
// clustering on Euclidean distance, returning the dendrogram leaf order.
// NaN cells are treated as zero for distance purposes.
func ClusterOrder(rows [][]float64) []int {
	n := len(rows)
	if n < 3 {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}

	sanitized := make([][]float64, n)
	for i, row := range rows {
		s := make([]float64, len(row))
		for j, v := range row {
			if !math.IsNaN(v) {
				s[j] = v
			}
		}
		sanitized[i] = s
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := 0; j < i; j++ {
			d := floats.Distance(sanitized[i], sanitized[j], 2)
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	// Each cluster is the list of leaf indices it contains; linkage between
	// clusters is the mean pairwise leaf distance.
	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}

	linkage := func(a, b []int) float64 {
		var sum float64
		for _, i := range a {
			for _, j := range b {
				sum += dist[i][j]
			}
		}
		return sum / float64(len(a)*len(b))
	}

	for len(clusters) > 1 {
		bestA, bestB := 0, 1
		best := math.Inf(1)
		for a := 0; a < len(clusters); a++ {
			for b := a + 1; b < len(clusters); b++ {
				if d := linkage(clusters[a], clusters[b]); d < best {
					best = d
					bestA, bestB = a, b
				}
			}
		}

		merged := append(append([]int{}, clusters[bestA]...), clusters[bestB]...)
		next := make([][]int, 0, len(clusters)-1)
		for i, c := range clusters {
			if i != bestA && i != bestB {
				next = append(next, c)
			}
		}
		clusters = append(next, merged)
	}

	return clusters[0]
}
