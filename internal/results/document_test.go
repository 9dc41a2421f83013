package results

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func readFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "comprehensive_results.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// fixtureMap returns the fixture as a mutable generic map so individual
// tests can knock out or corrupt one field.
func fixtureMap(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(readFixture(t), &m); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return m
}

func parseMap(t *testing.T, m map[string]any) (*Document, error) {
	t.Helper()
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return Parse(data)
}

func TestParse_ValidFixture(t *testing.T) {
	doc, err := Parse(readFixture(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantSummary := ExecutiveSummary{
		TotalDatasets:         4,
		TotalPairsTested:      10000,
		SignificantBonferroni: 970,
		SignificantFDR:        1500,
		HighConfidencePairs:   50,
		Tier0Candidates:       3,
	}
	if diff := cmp.Diff(wantSummary, doc.ExecutiveSummary); diff != "" {
		t.Errorf("executive summary mismatch (-want +got):\n%s", diff)
	}

	primary, ok := doc.ByStudy["GSE54650"]
	if !ok {
		t.Fatal("GSE54650 missing from ByStudy")
	}
	if got, want := primary.SignificantBonfRate, 0.097; got != want {
		t.Errorf("primary rate = %v, want %v", got, want)
	}
	if got, want := len(primary.Tissues), 6; got != want {
		t.Errorf("primary tissue count = %d, want %d", got, want)
	}

	if got, want := doc.TopTargetGenes[0], (TargetGene{Gene: "Wee1", TissuesSignificant: 6}); got != want {
		t.Errorf("top target = %+v, want %+v", got, want)
	}
	if got, want := len(doc.TopClockGenes), 8; got != want {
		t.Errorf("clock gene count = %d, want %d", got, want)
	}

	w := doc.CrossTissueConsensus.Wee1Summary
	if w.ClockGenesGating != 8 || w.TissuesWithSignificance != 6 {
		t.Errorf("wee1 summary counts = %d/%d, want 8/6", w.ClockGenesGating, w.TissuesWithSignificance)
	}

	if doc.EigenperiodAnalysis.Separation == nil {
		t.Fatal("separation should be present in fixture")
	}
	if got, want := *doc.EigenperiodAnalysis.Separation, 12.6; got != want {
		t.Errorf("separation = %v, want %v", got, want)
	}
}

func TestParse_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(m map[string]any)
		wantPath string
	}{
		{
			"no executive summary",
			func(m map[string]any) { delete(m, "executiveSummary") },
			"executiveSummary",
		},
		{
			"no pairs tested",
			func(m map[string]any) {
				delete(m["executiveSummary"].(map[string]any), "totalPairsTested")
			},
			"executiveSummary.totalPairsTested",
		},
		{
			"no byStudy",
			func(m map[string]any) { delete(m, "byStudy") },
			"byStudy",
		},
		{
			"study without rate",
			func(m map[string]any) {
				study := m["byStudy"].(map[string]any)["GSE221103"].(map[string]any)
				delete(study, "significantBonfRate")
			},
			"byStudy.GSE221103.significantBonfRate",
		},
		{
			"no target genes",
			func(m map[string]any) { delete(m, "topTargetGenes") },
			"topTargetGenes",
		},
		{
			"target gene without count",
			func(m map[string]any) {
				genes := m["topTargetGenes"].([]any)
				delete(genes[1].(map[string]any), "tissuesSignificant")
			},
			"topTargetGenes[1].tissuesSignificant",
		},
		{
			"no clock genes",
			func(m map[string]any) { delete(m, "topClockGenes") },
			"topClockGenes",
		},
		{
			"no wee1 summary",
			func(m map[string]any) {
				tier0 := m["crossTissueConsensus"].(map[string]any)["tier0Candidates"].(map[string]any)
				delete(tier0, "wee1Summary")
			},
			"crossTissueConsensus.tier0Candidates.wee1Summary",
		},
		{
			"no tissue list",
			func(m map[string]any) {
				w := m["crossTissueConsensus"].(map[string]any)["tier0Candidates"].(map[string]any)["wee1Summary"].(map[string]any)
				delete(w, "tissueList")
			},
			"crossTissueConsensus.tier0Candidates.wee1Summary.tissueList",
		},
		{
			"no eigenperiod analysis",
			func(m map[string]any) { delete(m, "eigenperiodAnalysis") },
			"eigenperiodAnalysis",
		},
		{
			"no p-value",
			func(m map[string]any) {
				delete(m["eigenperiodAnalysis"].(map[string]any), "pValue")
			},
			"eigenperiodAnalysis.pValue",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fixtureMap(t)
			tt.mutate(m)
			_, err := parseMap(t, m)
			var missErr *MissingFieldError
			if !errors.As(err, &missErr) {
				t.Fatalf("want MissingFieldError, got %v", err)
			}
			if missErr.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", missErr.Path, tt.wantPath)
			}
			if !strings.Contains(err.Error(), tt.wantPath) {
				t.Errorf("error message %q does not name the path", err)
			}
		})
	}
}

func TestParse_MalformedFields(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(m map[string]any)
		wantPath string
	}{
		{
			"negative count",
			func(m map[string]any) {
				m["executiveSummary"].(map[string]any)["tier0Candidates"] = -1
			},
			"executiveSummary.tier0Candidates",
		},
		{
			"bonferroni exceeds tested",
			func(m map[string]any) {
				m["executiveSummary"].(map[string]any)["significantBonferroni"] = 10001
			},
			"executiveSummary.significantBonferroni",
		},
		{
			"rate above one",
			func(m map[string]any) {
				m["byStudy"].(map[string]any)["GSE54650"].(map[string]any)["significantBonfRate"] = 9.7
			},
			"byStudy.GSE54650.significantBonfRate",
		},
		{
			"zero p-value",
			func(m map[string]any) {
				m["eigenperiodAnalysis"].(map[string]any)["pValue"] = 0.0
			},
			"eigenperiodAnalysis.pValue",
		},
		{
			"clock gating out of range",
			func(m map[string]any) {
				w := m["crossTissueConsensus"].(map[string]any)["tier0Candidates"].(map[string]any)["wee1Summary"].(map[string]any)
				w["clockGenesGating"] = 9
			},
			"crossTissueConsensus.tier0Candidates.wee1Summary.clockGenesGating",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fixtureMap(t)
			tt.mutate(m)
			_, err := parseMap(t, m)
			var malErr *MalformedFieldError
			if !errors.As(err, &malErr) {
				t.Fatalf("want MalformedFieldError, got %v", err)
			}
			if malErr.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", malErr.Path, tt.wantPath)
			}
		})
	}
}

func TestParse_WrongShape(t *testing.T) {
	m := fixtureMap(t)
	w := m["crossTissueConsensus"].(map[string]any)["tier0Candidates"].(map[string]any)["wee1Summary"].(map[string]any)
	w["tissueList"] = []string{"Liver"}

	_, err := parseMap(t, m)
	var malErr *MalformedFieldError
	if !errors.As(err, &malErr) {
		t.Fatalf("want MalformedFieldError for non-string tissueList, got %v", err)
	}
	if !strings.Contains(malErr.Path, "tissueList") {
		t.Errorf("path %q does not name tissueList", malErr.Path)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Fatal("want error for invalid JSON")
	}
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestParse_SeparationOptional(t *testing.T) {
	m := fixtureMap(t)
	delete(m["eigenperiodAnalysis"].(map[string]any), "separation")

	doc, err := parseMap(t, m)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.EigenperiodAnalysis.Separation != nil {
		t.Error("absent separation should project to nil")
	}
}
