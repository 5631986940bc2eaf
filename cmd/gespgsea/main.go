// gespgsea ranks each indication's full differential-expression table by
// log2 fold-change and tests it against the Hallmark, KEGG, and GO-BP
// collections, writing one result table per collection plus the
// highlights table consumed by the deck.
package main

import (
	"flag"
	"log"
	"path/filepath"
	"strings"

	"github.com/carbocation/gespscan/diffexp"
	"github.com/carbocation/gespscan/gmt"
	"github.com/carbocation/gespscan/gsea"
	"github.com/carbocation/gespscan/report"
)

type collection struct {
	name string
	sets []gmt.GeneSet
}

type collectionRow struct {
	Indication string  `csv:"indication"`
	Set        string  `csv:"set"`
	Size       int     `csv:"size"`
	ES         float64 `csv:"es"`
	NES        float64 `csv:"nes"`
	NominalP   float64 `csv:"p_value"`
}

func main() {
	var resultsDir, outDir string
	var hallmarkPath, keggPath, gobpPath string
	var nperm int
	var seed int64

	flag.StringVar(&resultsDir, "results", "results", "Directory holding the *_diffexp.tsv tables written by gespde.")
	flag.StringVar(&outDir, "out", "results", "Directory for the GSEA report tables.")
	flag.StringVar(&hallmarkPath, "hallmark", "", "Path to the Hallmark GMT file.")
	flag.StringVar(&keggPath, "kegg", "", "Path to the KEGG GMT file.")
	flag.StringVar(&gobpPath, "gobp", "", "Path to the GO biological-process GMT file.")
	flag.IntVar(&nperm, "nperm", 1000, "Number of gene-label permutations.")
	flag.Int64Var(&seed, "seed", 1, "Permutation RNG seed.")
	flag.Parse()

	if hallmarkPath == "" || keggPath == "" || gobpPath == "" {
		flag.PrintDefaults()
		return
	}

	if err := run(resultsDir, outDir, hallmarkPath, keggPath, gobpPath, nperm, seed); err != nil {
		log.Fatalln(err)
	}
}

func run(resultsDir, outDir, hallmarkPath, keggPath, gobpPath string, nperm int, seed int64) error {
	collections := make([]collection, 0, 3)
	for _, c := range []struct{ name, path string }{
		{"hallmark", hallmarkPath},
		{"kegg", keggPath},
		{"gobp", gobpPath},
	} {
		sets, err := gmt.Read(c.path)
		if err != nil {
			return err
		}
		log.Println("Loaded", len(sets), "gene sets from", c.path)
		collections = append(collections, collection{name: c.name, sets: sets})
	}

	paths, err := filepath.Glob(filepath.Join(resultsDir, "*_diffexp.tsv"))
	if err != nil {
		return err
	}
	log.Println("Found", len(paths), "differential-expression tables")

	perCollection := make(map[string][]collectionRow)
	var highlights []gsea.HighlightRow

	for _, path := range paths {
		indication := strings.TrimSuffix(filepath.Base(path), "_diffexp.tsv")

		records := []diffexp.Record{}
		if err := report.ReadTable(path, &records); err != nil {
			return err
		}

		ranked := make([]gsea.RankedGene, 0, len(records))
		for _, rec := range records {
			ranked = append(ranked, gsea.RankedGene{Gene: rec.Gene, Score: rec.Log2FC})
		}

		byName := make(map[string][]gsea.Result, len(collections))
		for _, coll := range collections {
			results, err := gsea.Preranked(ranked, coll.sets, nperm, seed)
			if err != nil {
				return err
			}
			byName[coll.name] = results
			log.Println(indication, coll.name+":", len(results), "sets tested")

			for _, r := range results {
				perCollection[coll.name] = append(perCollection[coll.name], collectionRow{
					Indication: indication,
					Set:        r.Set,
					Size:       r.Size,
					ES:         r.ES,
					NES:        r.NES,
					NominalP:   r.NominalP,
				})
			}
		}

		highlights = append(highlights, highlightRows(indication, byName)...)
	}

	for name, rows := range perCollection {
		out := filepath.Join(outDir, "gsea_"+name+".tsv")
		if err := report.WriteTable(out, &rows); err != nil {
			return err
		}
		log.Println("Wrote", out)
	}

	out := filepath.Join(outDir, "gsea_highlights.tsv")
	if err := report.WriteTable(out, &highlights); err != nil {
		return err
	}
	log.Println("Wrote", out)

	return nil
}

func highlightRows(indication string, byName map[string][]gsea.Result) []gsea.HighlightRow {
	var rows []gsea.HighlightRow

	appendRow := func(collection, direction string, r gsea.Result, ok bool) {
		if !ok {
			return
		}
		rows = append(rows, gsea.HighlightRow{
			Indication: indication,
			Collection: collection,
			Direction:  direction,
			Set:        r.Set,
			NES:        r.NES,
			NominalP:   r.NominalP,
		})
	}

	hallmark := byName["hallmark"]
	kegg := byName["kegg"]
	gobp := byName["gobp"]

	top, ok := gsea.TopByNES(hallmark)
	appendRow("hallmark", "up", top, ok)
	bottom, ok := gsea.BottomByNES(hallmark)
	appendRow("hallmark", "down", bottom, ok)

	top, ok = gsea.TopByNES(kegg)
	appendRow("kegg", "up", top, ok)
	// The downregulated KEGG row has always been drawn from the hallmark
	// results. TODO: confirm with the analysis author whether this should
	// read from the KEGG results instead.
	bottom, ok = gsea.BottomByNES(hallmark)
	appendRow("kegg", "down", bottom, ok)

	top, ok = gsea.TopByNES(gobp)
	appendRow("gobp", "up", top, ok)
	bottom, ok = gsea.BottomByNES(gobp)
	appendRow("gobp", "down", bottom, ok)

	return rows
}
