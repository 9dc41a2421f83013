package results

import (
	"encoding/json"
	"fmt"
	"os"
)

// HeatmapDoc is the standalone heatmap fragment: per-tissue -log10(p) values
// for each target gene, one column per clock gene. A nil value means the pair
// was not tested and plots as zero.
type HeatmapDoc struct {
	ClockGenes []string                        `json:"clockGenes"`
	Tissues    map[string]map[string][]*float64 `json:"tissues"`
}

// LoadHeatmapDoc reads and validates the figure2 heatmap fragment.
func LoadHeatmapDoc(path string) (*HeatmapDoc, error) {
	var doc HeatmapDoc
	if err := loadFragment(path, &doc); err != nil {
		return nil, err
	}
	if len(doc.ClockGenes) == 0 {
		return nil, fmt.Errorf("%s: %w", path, missing("clockGenes"))
	}
	if len(doc.Tissues) == 0 {
		return nil, fmt.Errorf("%s: %w", path, missing("tissues"))
	}
	for tissue, targets := range doc.Tissues {
		for gene, vals := range targets {
			if len(vals) > len(doc.ClockGenes) {
				return nil, fmt.Errorf("%s: %w", path,
					malformed(fmt.Sprintf("tissues.%s.%s", tissue, gene),
						"%d values for %d clock genes", len(vals), len(doc.ClockGenes)))
			}
		}
	}
	return &doc, nil
}

// PathwayModel is the standalone model-diagram fragment.
type PathwayModel struct {
	Tissues []PathwayTissue `json:"tissues"`
}

// PathwayTissue describes one tissue node of the protection-model diagram.
type PathwayTissue struct {
	Name    string   `json:"name"`
	Pathway string   `json:"pathway"`
	Targets []string `json:"targets"`
}

// LoadPathwayModel reads and validates the figure3 pathway-model fragment.
func LoadPathwayModel(path string) (*PathwayModel, error) {
	var doc PathwayModel
	if err := loadFragment(path, &doc); err != nil {
		return nil, err
	}
	if len(doc.Tissues) == 0 {
		return nil, fmt.Errorf("%s: %w", path, missing("tissues"))
	}
	for i, t := range doc.Tissues {
		if t.Name == "" {
			return nil, fmt.Errorf("%s: %w", path, missing(fmt.Sprintf("tissues[%d].name", i)))
		}
	}
	return &doc, nil
}

func loadFragment(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fragment: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%s: results: invalid JSON: %w", path, err)
	}
	return nil
}
