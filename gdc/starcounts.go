package gdc

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// ParseSTARCounts reads one GDC STAR gene-counts TSV (optionally gzipped)
// and returns unstranded raw counts keyed by gene symbol. The file may open
// with a "# gene-model: ..." comment line, and closes rows like N_unmapped
// are summary lines, not genes.
func ParseSTARCounts(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	var raw io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer gz.Close()
		raw = gz
	}

	r := bufio.NewReader(raw)

	line, err := r.ReadString('\n')
	if err != nil {
		return nil, pfx.Err(err)
	}
	if !strings.HasPrefix(line, "#") {
		r = bufio.NewReader(io.MultiReader(strings.NewReader(line), r))
	}

	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, pfx.Err(err)
	}

	geneIdx, countIdx := -1, -1
	for i, col := range header {
		switch col {
		case "gene_name":
			geneIdx = i
		case "unstranded":
			countIdx = i
		}
	}
	if geneIdx == -1 || countIdx == -1 {
		return nil, pfx.Err(fmt.Errorf("%s is missing the gene_name or unstranded column", path))
	}

	counts := make(map[string]float64)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		gene := rec[geneIdx]
		if gene == "" || strings.HasPrefix(rec[0], "N_") {
			continue
		}

		val, err := strconv.ParseFloat(rec[countIdx], 64)
		if err != nil {
			continue
		}

		// A symbol can appear on several ENSG rows; sum them.
		counts[gene] += val
	}

	return counts, nil
}
