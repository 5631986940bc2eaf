// Package gmt reads gene-set collections in the Broad GMT text format:
// one set per line, tab-separated, name then description/URL then members.
package gmt

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

// GeneSet is one named pathway and its member genes.
type GeneSet struct {
	Name        string
	Description string
	Genes       []string
}

// Read parses a GMT file, transparently handling gzip.
func Read(path string) ([]GeneSet, error) {
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

	var sets []GeneSet

	sc := bufio.NewScanner(raw)
	sc.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, pfx.Err(fmt.Errorf("%s: gene set %q has no members", path, fields[0]))
		}

		set := GeneSet{Name: fields[0], Description: fields[1]}
		for _, gene := range fields[2:] {
			if gene != "" {
				set.Genes = append(set.Genes, gene)
			}
		}
		sets = append(sets, set)
	}
	if err := sc.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return sets, nil
}
