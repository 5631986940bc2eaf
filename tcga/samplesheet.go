package tcga

import (
	"encoding/csv"
	"os"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// SampleSheetRow is one line of a GDC sample sheet export, which maps
// portal file IDs back to case and sample barcodes.
type SampleSheetRow struct {
	FileID     string `csv:"File ID"`
	FileName   string `csv:"File Name"`
	DataType   string `csv:"Data Type"`
	ProjectID  string `csv:"Project ID"`
	CaseID     string `csv:"Case ID"`
	SampleID   string `csv:"Sample ID"`
	SampleType string `csv:"Sample Type"`
}

// ReadSampleSheet loads a tab-delimited GDC sample sheet.
func ReadSampleSheet(path string) ([]SampleSheetRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.LazyQuotes = true

	rows := []SampleSheetRow{}
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, pfx.Err(err)
	}

	return rows, nil
}
