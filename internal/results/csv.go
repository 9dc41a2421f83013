package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// DiscoveryCSVRow is one row of the standalone discovery-rate table
// (Tissue,Rate,Significant,Total). Rate is already a percentage.
type DiscoveryCSVRow struct {
	Tissue      string
	Rate        float64
	Significant int
	Total       int
}

var discoveryHeader = []string{"Tissue", "Rate", "Significant", "Total"}

// LoadDiscoveryCSV reads the companion CSV for the standalone discovery
// figure. Rows are returned in file order; sorting is the renderer's concern.
func LoadDiscoveryCSV(path string) ([]DiscoveryCSVRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read discovery csv: %w", err)
	}
	defer f.Close()
	rows, err := ParseDiscoveryCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ParseDiscoveryCSV parses the Tissue,Rate,Significant,Total table.
func ParseDiscoveryCSV(r io.Reader) ([]DiscoveryCSVRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(discoveryHeader)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, missing("header")
	}
	if err != nil {
		return nil, fmt.Errorf("results: read csv header: %w", err)
	}
	for i, want := range discoveryHeader {
		if header[i] != want {
			return nil, malformed("header", "column %d is %q, want %q", i+1, header[i], want)
		}
	}

	var rows []DiscoveryCSVRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("results: read csv row: %w", err)
		}
		rate, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, malformed(fmt.Sprintf("row %d.Rate", line), "%q is not a number", rec[1])
		}
		sig, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, malformed(fmt.Sprintf("row %d.Significant", line), "%q is not an integer", rec[2])
		}
		total, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, malformed(fmt.Sprintf("row %d.Total", line), "%q is not an integer", rec[3])
		}
		rows = append(rows, DiscoveryCSVRow{Tissue: rec[0], Rate: rate, Significant: sig, Total: total})
	}
	if len(rows) == 0 {
		return nil, missing("rows")
	}
	return rows, nil
}
