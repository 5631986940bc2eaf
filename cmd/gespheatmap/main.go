// gespheatmap assembles the cross-indication log2 fold-change matrix from
// the labeled GESP tables and renders it as a clustered heatmap.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/carbocation/gespscan/diffexp"
	"github.com/carbocation/gespscan/report"
)

func main() {
	var resultsDir, matrixPath, heatmapPath string
	var significantOnly bool

	flag.StringVar(&resultsDir, "results", "results", "Directory holding the *_gesp.tsv tables written by gespde.")
	flag.StringVar(&matrixPath, "matrix", "gesp_log2fc_matrix.tsv", "Output wide matrix path.")
	flag.StringVar(&heatmapPath, "heatmap", "gesp_log2fc_heatmap.png", "Output heatmap PNG path.")
	flag.BoolVar(&significantOnly, "significant", true, "Restrict rows to genes called up or down in at least one indication.")
	flag.Parse()

	if err := run(resultsDir, matrixPath, heatmapPath, significantOnly); err != nil {
		log.Fatalln(err)
	}
}

func run(resultsDir, matrixPath, heatmapPath string, significantOnly bool) error {
	paths, err := filepath.Glob(filepath.Join(resultsDir, "*_gesp.tsv"))
	if err != nil {
		return err
	}
	log.Println("Found", len(paths), "labeled GESP tables")

	var long []report.FoldChange
	significant := make(map[string]bool)
	for _, path := range paths {
		rows := []diffexp.LabeledRecord{}
		if err := report.ReadTable(path, &rows); err != nil {
			return err
		}

		for _, row := range rows {
			long = append(long, report.FoldChange{
				Gene:       row.Gene,
				Indication: row.Indication,
				Log2FC:     row.Log2FC,
			})
			if row.Label != diffexp.NotSignificant {
				significant[row.Gene] = true
			}
		}
	}

	if significantOnly {
		kept := long[:0]
		for _, fc := range long {
			if significant[fc.Gene] {
				kept = append(kept, fc)
			}
		}
		long = kept
	}

	m, err := report.FromLong(long)
	if err != nil {
		return err
	}
	log.Println("Matrix:", len(m.Genes), "genes x", len(m.Indications), "indications")

	if err := m.WriteMatrixTSV(matrixPath); err != nil {
		return err
	}

	if err := report.Heatmap(m, heatmapPath); err != nil {
		return err
	}
	log.Println("Wrote", matrixPath, "and", heatmapPath)

	return nil
}
