package report

import (
	"bytes"
	"os"
	"sort"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// LabelCounts tallies significance calls for one indication.
type LabelCounts struct {
	Indication     string `csv:"indication"`
	Up             int    `csv:"up"`
	Down           int    `csv:"down"`
	NotSignificant int    `csv:"not_significant"`
}

var (
	upColor   = drawing.Color{R: 202, G: 0, B: 32, A: 255}
	downColor = drawing.Color{R: 5, G: 113, B: 176, A: 255}
)

// BarChart renders paired up/down bars per indication to a PNG.
func BarChart(counts []LabelCounts, path string) error {
	sorted := make([]LabelCounts, len(counts))
	copy(sorted, counts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Indication < sorted[j].Indication
	})

	bars := make([]chart.Value, 0, 2*len(sorted))
	for _, c := range sorted {
		ind := shortIndication(c.Indication)
		bars = append(bars,
			chart.Value{
				Label: ind + " up",
				Value: float64(c.Up),
				Style: chart.Style{FillColor: upColor, StrokeColor: upColor},
			},
			chart.Value{
				Label: ind + " dn",
				Value: float64(c.Down),
				Style: chart.Style{FillColor: downColor, StrokeColor: downColor},
			},
		)
	}

	graph := chart.BarChart{
		Title:    "Differentially expressed GESPs per indication",
		Width:    64 * len(bars),
		Height:   512,
		BarWidth: 38,
		Bars:     bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return pfx.Err(err)
	}

	outFile, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return pfx.Err(err)
	}

	return nil
}
