// Package export serialises the assembled scenario dataset. JSON is the only
// wire format of this boundary; the document is written identically to every
// configured destination.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mfeldner/gridrewind/core/model"
)

// ScenarioData bundles one scenario's timelines.
type ScenarioData struct {
	CapacityTimeseries []model.CapacityYearRecord  `json:"capacity_timeseries"`
	Events             []model.Event               `json:"events"`
	Emissions          []model.EmissionsYearRecord `json:"emissions"`
}

// Metadata describes the run that produced the dataset.
type Metadata struct {
	RunID                 string                `json:"run_id"`
	GeneratedAt           string                `json:"generated_at"`
	StartYear             int                   `json:"start_year"`
	EndYear               int                   `json:"end_year"`
	Notes                 []string              `json:"notes"`
	SiteBaselines         model.BucketBaselines `json:"site_baselines"`
	MunicipalityBaselines model.BucketBaselines `json:"municipality_baselines"`
}

// Dataset is the complete output document.
type Dataset struct {
	Historical     ScenarioData `json:"historical"`
	Counterfactual ScenarioData `json:"counterfactual"`
	Metadata       Metadata     `json:"metadata"`
}

// WriteJSON writes the dataset to w as indented JSON.
func WriteJSON(w io.Writer, d *Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// WriteFiles marshals the dataset once and writes the identical payload to
// every path, creating parent directories as needed. Nothing is written
// until the whole document is assembled in memory.
func WriteFiles(d *Dataset, paths ...string) error {
	payload, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	payload = append(payload, '\n')
	for _, path := range paths {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, payload, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

// WriteCapacityCSV writes a capacity time series to w in CSV format.
func WriteCapacityCSV(w io.Writer, records []model.CapacityYearRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"year", "nuclear_mw", "fossil_mw", "other_mw", "total_mw"}); err != nil {
		return err
	}
	for _, r := range records {
		rec := []string{
			strconv.Itoa(r.Year),
			strconv.FormatFloat(r.NuclearMW, 'f', -1, 64),
			strconv.FormatFloat(r.FossilMW, 'f', -1, 64),
			strconv.FormatFloat(r.OtherMW, 'f', -1, 64),
			strconv.FormatFloat(r.TotalMW, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadFile loads a previously written dataset document.
func ReadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var d Dataset
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &d, nil
}
