package results

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFragment(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fragment.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fragment: %v", err)
	}
	return path
}

func TestLoadHeatmapDoc(t *testing.T) {
	path := writeFragment(t, `{
		"clockGenes": ["Bmal1", "Per2", "Cry1"],
		"tissues": {
			"Liver": {
				"Wee1": [3.2, null, 1.4],
				"Myc": [0.8, 2.1]
			}
		}
	}`)

	doc, err := LoadHeatmapDoc(path)
	if err != nil {
		t.Fatalf("LoadHeatmapDoc: %v", err)
	}
	if got, want := len(doc.ClockGenes), 3; got != want {
		t.Errorf("clock gene count = %d, want %d", got, want)
	}
	vals := doc.Tissues["Liver"]["Wee1"]
	if vals[1] != nil {
		t.Error("null value should decode as nil")
	}
	if vals[0] == nil || *vals[0] != 3.2 {
		t.Errorf("first value = %v, want 3.2", vals[0])
	}
}

func TestLoadHeatmapDoc_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no clock genes", `{"tissues": {"Liver": {"Wee1": [1.0]}}}`},
		{"no tissues", `{"clockGenes": ["Bmal1"]}`},
		{"too many values", `{"clockGenes": ["Bmal1"], "tissues": {"Liver": {"Wee1": [1.0, 2.0]}}}`},
		{"invalid json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadHeatmapDoc(writeFragment(t, tt.input)); err == nil {
				t.Fatal("want error")
			}
		})
	}
}

func TestLoadPathwayModel(t *testing.T) {
	path := writeFragment(t, `{
		"tissues": [
			{"name": "Liver", "pathway": "Metabolism", "targets": ["Wee1"]},
			{"name": "Heart", "pathway": "Hippo", "targets": ["Yap1", "Tead1"]}
		]
	}`)

	doc, err := LoadPathwayModel(path)
	if err != nil {
		t.Fatalf("LoadPathwayModel: %v", err)
	}
	if got, want := len(doc.Tissues), 2; got != want {
		t.Fatalf("tissue count = %d, want %d", got, want)
	}
	if doc.Tissues[1].Pathway != "Hippo" {
		t.Errorf("pathway = %q, want Hippo", doc.Tissues[1].Pathway)
	}
}

func TestLoadPathwayModel_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no tissues", `{"tissues": []}`},
		{"unnamed tissue", `{"tissues": [{"pathway": "Metabolism"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadPathwayModel(writeFragment(t, tt.input)); err == nil {
				t.Fatal("want error")
			}
		})
	}
}
