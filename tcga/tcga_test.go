package tcga

import "testing"

func TestSampleTypeCode(t *testing.T) {
	for _, v := range []struct {
		barcode string
		code    string
		tumor   bool
		normal  bool
	}{
		{"TCGA-A7-A0CE-01A-11R-A00Z-07", "01", true, false},
		{"TCGA-A7-A0CE-11A-21R-A089-07", "11", false, true},
		{"TCGA-44-2668-10A-01D-1855-01", "10", false, true},
		{"TCGA-06-0152-02A-01R-2005-01", "02", true, false},
		{"TCGA-AB-2803-03B-01T-0734-13", "03", true, false},
		{"TCGA-GN-A26A-06A-11R-A18T-07", "06", true, false},
		{"TCGA-BRCA-20", "", false, false},
	} {
		code, err := SampleTypeCode(v.barcode)
		if v.code == "" {
			if err == nil {
				t.Fatalf("expected an error for %q, got code %q", v.barcode, code)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", v.barcode, err)
		}

		if code != v.code {
			t.Fatalf("%q: got code %q, expected %q", v.barcode, code, v.code)
		}
		if got := IsTumor(v.barcode); got != v.tumor {
			t.Fatalf("%q: IsTumor = %v, expected %v", v.barcode, got, v.tumor)
		}
		if got := IsNormal(v.barcode); got != v.normal {
			t.Fatalf("%q: IsNormal = %v, expected %v", v.barcode, got, v.normal)
		}
	}
}

func TestIndicationsAreProjects(t *testing.T) {
	seen := make(map[string]struct{})
	for _, ind := range Indications {
		if len(ind) < 6 || ind[:5] != "TCGA-" {
			t.Fatalf("indication %q is not a TCGA project code", ind)
		}
		if _, ok := seen[ind]; ok {
			t.Fatalf("indication %q is listed twice", ind)
		}
		seen[ind] = struct{}{}
	}
}
