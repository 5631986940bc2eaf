// Package gdc queries the NCI Genomic Data Commons REST API for TCGA
// expression data and downloads the underlying count files.
package gdc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
)

const (
	filesEndpoint = "https://api.gdc.cancer.gov/files"
	dataEndpoint  = "https://api.gdc.cancer.gov/data"

	// Fixed selectors for the RNA-seq raw counts produced by the GDC
	// harmonization pipeline.
	dataType     = "Gene Expression Quantification"
	workflowType = "STAR - Counts"

	// One TCGA project never has this many expression files.
	maxHits = "10000"
)

// FileHit is one expression file returned by the files endpoint, together
// with the aliquot barcode it was derived from.
type FileHit struct {
	ID       string
	FileName string
	Barcode  string
}

type filesRequest struct {
	Filters json.RawMessage `json:"filters"`
	Fields  string          `json:"fields"`
	Format  string          `json:"format"`
	Size    string          `json:"size"`
}

type filesResponse struct {
	Data struct {
		Hits []struct {
			ID                 string `json:"id"`
			FileName           string `json:"file_name"`
			AssociatedEntities []struct {
				EntitySubmitterID string `json:"entity_submitter_id"`
			} `json:"associated_entities"`
		} `json:"hits"`
	} `json:"data"`
}

// Query lists the STAR raw-counts expression files for one TCGA project.
// Network and API errors propagate to the caller; there is no retry.
func Query(project string) ([]FileHit, error) {
	filters := fmt.Sprintf(`{
  "op": "and",
  "content": [
    {"op": "in", "content": {"field": "cases.project.project_id", "value": [%q]}},
    {"op": "in", "content": {"field": "data_type", "value": [%q]}},
    {"op": "in", "content": {"field": "analysis.workflow_type", "value": [%q]}}
  ]
}`, project, dataType, workflowType)

	reqBody, err := json.Marshal(filesRequest{
		Filters: json.RawMessage(filters),
		Fields:  "file_id,file_name,associated_entities.entity_submitter_id",
		Format:  "JSON",
		Size:    maxHits,
	})
	if err != nil {
		return nil, pfx.Err(err)
	}

	resp, err := http.Post(filesEndpoint, "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, pfx.Err(fmt.Errorf("gdc files query for %s: status %d: %s", project, resp.StatusCode, body))
	}

	parsed := filesResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]FileHit, 0, len(parsed.Data.Hits))
	for _, hit := range parsed.Data.Hits {
		if len(hit.AssociatedEntities) < 1 {
			continue
		}

		out = append(out, FileHit{
			ID:       hit.ID,
			FileName: hit.FileName,
			Barcode:  hit.AssociatedEntities[0].EntitySubmitterID,
		})
	}

	return out, nil
}

// DownloadCounts fetches one file from the data endpoint into destDir and
// returns the local path. No caching: calling it again re-downloads.
func DownloadCounts(hit FileHit, destDir string) (string, error) {
	resp, err := http.Get(fmt.Sprintf("%s/%s", dataEndpoint, hit.ID))
	if err != nil {
		return "", pfx.Err(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", pfx.Err(fmt.Errorf("gdc download %s: status %d", hit.ID, resp.StatusCode))
	}

	dest := filepath.Join(destDir, hit.FileName)
	out, err := os.Create(dest)
	if err != nil {
		return "", pfx.Err(err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", pfx.Err(err)
	}

	return dest, nil
}
