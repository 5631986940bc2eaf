// Package report writes the pipeline's flat-file tables and figures.
package report

import (
	"encoding/csv"
	"encoding/gob"
	"os"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// WriteTable writes a slice of struct rows as a tab-delimited table with a
// header derived from the csv struct tags.
func WriteTable(path string, rows interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(w)); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// ReadTable reads a tab-delimited table into a pointer to a slice of
// struct rows.
func ReadTable(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.LazyQuotes = true

	if err := gocsv.UnmarshalCSV(r, out); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// WriteGob serializes any value to a gob file, the companion to the
// delimited table for consumers that want the full result back unscathed.
func WriteGob(path string, value interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(value); err != nil {
		return pfx.Err(err)
	}

	return nil
}
