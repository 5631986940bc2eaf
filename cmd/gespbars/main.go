// gespbars tallies up/down/not-significant calls from the per-indication
// labeled GESP tables and renders the summary bar chart.
package main

import (
	"flag"
	"log"
	"path/filepath"
	"strings"

	"github.com/carbocation/gespscan/diffexp"
	"github.com/carbocation/gespscan/report"
)

func main() {
	var resultsDir, chartPath, countsPath string

	flag.StringVar(&resultsDir, "results", "results", "Directory holding the *_gesp.tsv tables written by gespde.")
	flag.StringVar(&chartPath, "chart", "gesp_updown_counts.png", "Output bar chart path.")
	flag.StringVar(&countsPath, "counts", "gesp_updown_counts.tsv", "Output counts table path.")
	flag.Parse()

	if err := run(resultsDir, chartPath, countsPath); err != nil {
		log.Fatalln(err)
	}
}

func run(resultsDir, chartPath, countsPath string) error {
	paths, err := filepath.Glob(filepath.Join(resultsDir, "*_gesp.tsv"))
	if err != nil {
		return err
	}
	log.Println("Found", len(paths), "labeled GESP tables")

	var counts []report.LabelCounts
	for _, path := range paths {
		rows := []diffexp.LabeledRecord{}
		if err := report.ReadTable(path, &rows); err != nil {
			return err
		}

		c := report.LabelCounts{
			Indication: strings.TrimSuffix(filepath.Base(path), "_gesp.tsv"),
		}
		for _, row := range rows {
			switch row.Label {
			case diffexp.Up:
				c.Up++
			case diffexp.Down:
				c.Down++
			default:
				c.NotSignificant++
			}
		}
		counts = append(counts, c)
	}

	if err := report.WriteTable(countsPath, &counts); err != nil {
		return err
	}

	if err := report.BarChart(counts, chartPath); err != nil {
		return err
	}
	log.Println("Wrote", countsPath, "and", chartPath)

	return nil
}
