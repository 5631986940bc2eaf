// Package gespset loads the curated list of genes encoding surface
// proteins (GESPs) and the gene-level annotation lookups used to enrich
// labeled results.
package gespset

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	gespscan "github.com/carbocation/gespscan"
)

type referenceRow struct {
	Gene    string `csv:"gene"`
	Surface string `csv:"surface_protein"`
}

// Reference is the static GESP membership list. Loaded once, never mutated.
type Reference struct {
	surface map[string]bool
}

// ReadReference loads a gene + surface-protein-flag table from a local path
// or URL. The delimiter is auto-detected since curated lists circulate in
// several flavors. Truthy flag spellings: 1, true, yes, y (any case).
func ReadReference(input string) (*Reference, error) {
	fileBytes, err := gespscan.OpenFileOrURL(input)
	if err != nil {
		return nil, pfx.Err(err)
	}

	delim := gespscan.DetermineDelimiter(bytes.NewReader(fileBytes))

	r := csv.NewReader(bytes.NewReader(fileBytes))
	r.Comma = delim
	r.LazyQuotes = true

	rows := []referenceRow{}
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, pfx.Err(err)
	}

	ref := &Reference{surface: make(map[string]bool, len(rows))}
	for _, row := range rows {
		switch strings.ToLower(strings.TrimSpace(row.Surface)) {
		case "1", "true", "yes", "y":
			ref.surface[row.Gene] = true
		default:
			ref.surface[row.Gene] = false
		}
	}

	return ref, nil
}

// NewReference builds a reference directly from a gene -> flag map.
func NewReference(surface map[string]bool) *Reference {
	return &Reference{surface: surface}
}

// IsSurface reports whether the gene is present and flagged as encoding a
// surface protein.
func (r *Reference) IsSurface(gene string) bool { return r.surface[gene] }

// Len is the number of genes in the reference, flagged or not.
func (r *Reference) Len() int { return len(r.surface) }

// Annotation carries the external gene-level lookups attached to labeled
// results.
type Annotation struct {
	EnzymeClass string `csv:"enzyme_class"`
	GeneFamily  string `csv:"gene_family"`
}

type annotationRow struct {
	Gene        string `csv:"gene"`
	EnzymeClass string `csv:"enzyme_class"`
	GeneFamily  string `csv:"gene_family"`
}

// ReadAnnotations loads the gene -> {enzyme class, family} lookup table
// from a local path or URL.
func ReadAnnotations(input string) (map[string]Annotation, error) {
	fileBytes, err := gespscan.OpenFileOrURL(input)
	if err != nil {
		return nil, pfx.Err(err)
	}

	delim := gespscan.DetermineDelimiter(bytes.NewReader(fileBytes))

	r := csv.NewReader(bytes.NewReader(fileBytes))
	r.Comma = delim
	r.LazyQuotes = true

	rows := []annotationRow{}
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, pfx.Err(err)
	}

	out := make(map[string]Annotation, len(rows))
	for _, row := range rows {
		out[row.Gene] = Annotation{EnzymeClass: row.EnzymeClass, GeneFamily: row.GeneFamily}
	}

	return out, nil
}
