// Package tcga holds The Cancer Genome Atlas project codes and barcode
// conventions used throughout the pipeline.
package tcga

import (
	"fmt"
	"strings"

	"github.com/carbocation/pfx"
)

// Indications is the fixed set of TCGA projects profiled by the pipeline.
// Projects without solid-tissue normal sequencing are not worth listing:
// they would be skipped by the normal-sample guard anyway.
var Indications = []string{
	"TCGA-BLCA",
	"TCGA-BRCA",
	"TCGA-COAD",
	"TCGA-ESCA",
	"TCGA-HNSC",
	"TCGA-KICH",
	"TCGA-KIRC",
	"TCGA-KIRP",
	"TCGA-LIHC",
	"TCGA-LUAD",
	"TCGA-LUSC",
	"TCGA-PRAD",
	"TCGA-STAD",
	"TCGA-THCA",
	"TCGA-UCEC",
}

// TCGA sample-type codes. Codes 01-09 are tumors, 10-19 are normals.
// https://gdc.cancer.gov/resources-tcga-users/tcga-code-tables/sample-type-codes
const (
	PrimaryTumor      = "01"
	SolidTissueNormal = "11"
)

// SampleTypeCode extracts the two-digit sample-type code from a full TCGA
// aliquot barcode such as TCGA-A7-A0CE-11A-21R-A089-07.
func SampleTypeCode(barcode string) (string, error) {
	parts := strings.Split(barcode, "-")
	if len(parts) < 4 || len(parts[3]) < 2 {
		return "", pfx.Err(fmt.Errorf("barcode %q does not contain a sample-type field", barcode))
	}

	return parts[3][:2], nil
}

// IsTumor reports whether the barcode names a tumor aliquot (codes 01-09).
func IsTumor(barcode string) bool {
	code, err := SampleTypeCode(barcode)
	if err != nil {
		return false
	}

	return code[0] == '0' && code[1] != '0'
}

// IsNormal reports whether the barcode names a normal aliquot (codes 10-19).
func IsNormal(barcode string) bool {
	code, err := SampleTypeCode(barcode)
	if err != nil {
		return false
	}

	return code[0] == '1'
}
