package report

import (
	"math"

	"github.com/carbocation/pfx"
	"github.com/fogleman/gg"
)

const (
	cellW = 22.0
	cellH = 12.0

	leftMargin  = 110.0
	topMargin   = 70.0
	stripHeight = 10.0

	// Fold-changes are clamped to +/- this before color mapping.
	colorScaleMax = 3.0
)

// annotationPalette provides the fixed per-indication strip colors, cycled
// in column order.
var annotationPalette = [][3]float64{
	{0.894, 0.102, 0.110},
	{0.216, 0.494, 0.722},
	{0.302, 0.686, 0.290},
	{0.596, 0.306, 0.639},
	{1.000, 0.498, 0.000},
	{1.000, 1.000, 0.200},
	{0.651, 0.337, 0.157},
	{0.969, 0.506, 0.749},
	{0.600, 0.600, 0.600},
}

// Heatmap renders the fold-change matrix as a clustered heatmap PNG.
// Rows (genes) and columns (indications) are both reordered by
// hierarchical clustering; a color strip above the cells identifies each
// indication.
func Heatmap(m *FoldChangeMatrix, path string) error {
	rowOrder := ClusterOrder(m.Values)
	colOrder := ClusterOrder(transpose(m.Values))

	width := int(leftMargin + cellW*float64(len(m.Indications)) + 20)
	height := int(topMargin + stripHeight + cellH*float64(len(m.Genes)) + 20)

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Indication annotation strip and column labels.
	for cj, j := range colOrder {
		x := leftMargin + float64(cj)*cellW
		c := annotationPalette[j%len(annotationPalette)]
		dc.SetRGB(c[0], c[1], c[2])
		dc.DrawRectangle(x, topMargin, cellW, stripHeight)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(shortIndication(m.Indications[j]), x+cellW/2, topMargin-6, 0.5, 1.0)
	}

	// Cells.
	for ri, i := range rowOrder {
		y := topMargin + stripHeight + float64(ri)*cellH

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(m.Genes[i], leftMargin-4, y+cellH/2, 1.0, 0.4)

		for cj, j := range colOrder {
			x := leftMargin + float64(cj)*cellW
			r, g, b := foldChangeColor(m.Values[i][j])
			dc.SetRGB(r, g, b)
			dc.DrawRectangle(x, y, cellW, cellH)
			dc.Fill()
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// foldChangeColor maps a log2 fold-change onto a diverging
// blue-white-red scale; missing values render gray.
func foldChangeColor(v float64) (r, g, b float64) {
	if math.IsNaN(v) {
		return 0.85, 0.85, 0.85
	}

	t := v / colorScaleMax
	if t > 1 {
		t = 1
	} else if t < -1 {
		t = -1
	}

	if t >= 0 {
		return 1, 1 - t, 1 - t
	}

	return 1 + t, 1 + t, 1
}

func transpose(values [][]float64) [][]float64 {
	if len(values) == 0 {
		return nil
	}

	out := make([][]float64, len(values[0]))
	for j := range out {
		col := make([]float64, len(values))
		for i := range values {
			col[i] = values[i][j]
		}
		out[j] = col
	}

	return out
}

// shortIndication trims the TCGA- project prefix to keep column labels
// inside their cells.
func shortIndication(ind string) string {
	const prefix = "TCGA-"
	if len(ind) > len(prefix) && ind[:len(prefix)] == prefix {
		return ind[len(prefix):]
	}

	return ind
}
