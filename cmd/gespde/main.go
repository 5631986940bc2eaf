// gespde runs the per-indication differential-expression pass: it pulls
// STAR raw counts for each TCGA project from the GDC, normalizes and
// filters them, tests tumor against solid-tissue normal, and writes the
// full test table plus the labeled GESP table for every indication with
// enough normal samples.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aybabtme/uniplot/histogram"

	"github.com/carbocation/gespscan/diffexp"
	"github.com/carbocation/gespscan/expr"
	"github.com/carbocation/gespscan/gdc"
	"github.com/carbocation/gespscan/gespset"
	"github.com/carbocation/gespscan/report"
	"github.com/carbocation/gespscan/tcga"
)

const lowExpressionQuantile = 0.25

func main() {
	var (
		outDir      string
		scratchDir  string
		gespPath    string
		annotPath   string
		sheetPath   string
		indications string
	)

	flag.StringVar(&outDir, "out", "results", "Directory for output tables.")
	flag.StringVar(&scratchDir, "scratch", "gdc-scratch", "Directory for downloaded count files.")
	flag.StringVar(&gespPath, "gesp", "", "Path or URL to the GESP reference list (gene, surface_protein columns).")
	flag.StringVar(&annotPath, "annotations", "", "Optional path or URL to the gene annotation lookup (gene, enzyme_class, gene_family columns).")
	flag.StringVar(&sheetPath, "samplesheet", "", "Optional path to a GDC sample sheet for the run.")
	flag.StringVar(&indications, "indications", "", "Comma-delimited subset of TCGA project codes. Defaults to the full fixed list.")
	flag.Parse()

	if gespPath == "" {
		flag.PrintDefaults()
		return
	}

	if err := run(outDir, scratchDir, gespPath, annotPath, sheetPath, indications); err != nil {
		log.Fatalln(err)
	}
}

func run(outDir, scratchDir, gespPath, annotPath, sheetPath, indications string) error {
	for _, dir := range []string{outDir, scratchDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	ref, err := gespset.ReadReference(gespPath)
	if err != nil {
		return err
	}
	log.Println("Loaded", ref.Len(), "genes from the GESP reference")

	annots := map[string]gespset.Annotation{}
	if annotPath != "" {
		if annots, err = gespset.ReadAnnotations(annotPath); err != nil {
			return err
		}
		log.Println("Loaded annotations for", len(annots), "genes")
	}

	if sheetPath != "" {
		sheet, err := tcga.ReadSampleSheet(sheetPath)
		if err != nil {
			return err
		}
		log.Println("Loaded sample sheet with", len(sheet), "rows")
	}

	projects := tcga.Indications
	if indications != "" {
		projects = strings.Split(indications, ",")
	}

	var skipped []string
	for _, project := range projects {
		res, err := processIndication(project, scratchDir, ref, annots, outDir)
		if err != nil {
			return err
		}
		if res.Skipped {
			log.Printf("%s: skipped (%d normal samples, need %d)\n", project, res.NormalCount, expr.MinNormalSamples)
			skipped = append(skipped, project)
		}
	}

	log.Printf("Done. %d of %d indications skipped for insufficient normals: %v\n", len(skipped), len(projects), skipped)

	return nil
}

func processIndication(project, scratchDir string, ref *gespset.Reference, annots map[string]gespset.Annotation, outDir string) (*diffexp.Result, error) {
	log.Println(project, "querying GDC")
	hits, err := gdc.Query(project)
	if err != nil {
		return nil, err
	}
	log.Println(project, "found", len(hits), "expression files")

	builder := expr.NewBuilder()
	for i, hit := range hits {
		path, err := gdc.DownloadCounts(hit, scratchDir)
		if err != nil {
			return nil, err
		}

		counts, err := gdc.ParseSTARCounts(path)
		if err != nil {
			return nil, err
		}
		if err := builder.AddSample(hit.Barcode, counts); err != nil {
			return nil, err
		}

		if (i+1)%100 == 0 {
			log.Println(project, "downloaded", i+1, "of", len(hits))
		}
	}

	m, err := builder.Matrix()
	if err != nil {
		return nil, err
	}
	log.Println(project, len(m.Genes), "genes x", len(m.Samples), "samples before filtering")

	m.CPM()
	m.Log2()
	if m, err = m.FilterLowExpressed(lowExpressionQuantile); err != nil {
		return nil, err
	}
	log.Println(project, len(m.Genes), "genes retained after low-expression filtering")

	res, err := diffexp.Run(project, m)
	if err != nil {
		return nil, err
	}
	if res.Skipped {
		return res, nil
	}

	log.Printf("%s: tested %d genes (%d tumor vs %d normal)\n", project, len(res.Records), res.TumorCount, res.NormalCount)

	if err := writeIndication(project, res, ref, annots, outDir); err != nil {
		return nil, err
	}

	return res, nil
}

func writeIndication(project string, res *diffexp.Result, ref *gespset.Reference, annots map[string]gespset.Annotation, outDir string) error {
	if err := report.WriteTable(filepath.Join(outDir, project+"_diffexp.tsv"), &res.Records); err != nil {
		return err
	}
	if err := report.WriteGob(filepath.Join(outDir, project+"_diffexp.gob"), res); err != nil {
		return err
	}

	labeled := diffexp.LabelGESP(project, res.Records, ref, annots)
	if err := report.WriteTable(filepath.Join(outDir, project+"_gesp.tsv"), &labeled); err != nil {
		return err
	}

	up, down := 0, 0
	fcs := make([]float64, 0, len(labeled))
	for _, rec := range labeled {
		fcs = append(fcs, rec.Log2FC)
		switch rec.Label {
		case diffexp.Up:
			up++
		case diffexp.Down:
			down++
		}
	}
	log.Printf("%s: %d GESPs labeled (%d up, %d down)\n", project, len(labeled), up, down)

	if len(fcs) > 0 {
		fmt.Println(project, "GESP log2 fold-change distribution:")
		if err := histogram.Fprint(os.Stdout, histogram.Hist(9, fcs), histogram.Linear(40)); err != nil {
			return err
		}
	}

	return nil
}
