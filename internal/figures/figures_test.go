package figures

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"par2fig/internal/render"
	"par2fig/internal/results"
	"par2fig/internal/views"
)

func TestComma(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{970, "970"},
		{1500, "1,500"},
		{10000, "10,000"},
		{1234567, "1,234,567"},
		{-10000, "-10,000"},
	}
	for _, tt := range tests {
		if got := comma(tt.in); got != tt.want {
			t.Errorf("comma(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	got, err := ParseHex("#22d3ee")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	want := color.RGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff}
	if got != want {
		t.Errorf("ParseHex = %v, want %v", got, want)
	}

	for _, bad := range []string{"22d3ee", "#22d3e", "#gggggg", ""} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) should fail", bad)
		}
	}
}

func discoveryRows() []views.DiscoveryRow {
	return []views.DiscoveryRow{
		{Label: "Liver", Rate: 9.7, Category: views.CategoryTissue},
		{Label: "Heart", Rate: 9.7, Category: views.CategoryTissue},
		{Label: "MYC-ON (Cancer)", Rate: 12.2, Category: views.CategoryCancer},
		{Label: "Organoids", Rate: 8.3, Category: views.CategoryOrganoid},
	}
}

func TestDiscovery(t *testing.T) {
	summary := results.ExecutiveSummary{TotalDatasets: 4, TotalPairsTested: 10000}
	fig := Discovery(discoveryRows(), summary)

	if fig.Name != "figure1_discovery_rates" {
		t.Errorf("name = %q", fig.Name)
	}
	chart := fig.Panels[0].(*render.BarChart)
	if len(chart.Bars) != 4 {
		t.Fatalf("bar count = %d, want 4", len(chart.Bars))
	}
	if chart.Bars[0].Color != Cyan || chart.Bars[2].Color != Red || chart.Bars[3].Color != Green {
		t.Error("category colors not applied")
	}
	if chart.Bars[2].ValueLabel != "12.2%" {
		t.Errorf("value label = %q, want 12.2%%", chart.Bars[2].ValueLabel)
	}
	if len(chart.Legend) != 3 {
		t.Errorf("legend entries = %d, want 3", len(chart.Legend))
	}
	wantNote := "Source: 4 datasets, 10,000 pairs tested"
	if diff := cmp.Diff([]string{wantNote}, chart.Annotations); diff != "" {
		t.Errorf("annotations (-want +got):\n%s", diff)
	}
}

func TestDiscoveryFromCSV_SortsByRate(t *testing.T) {
	rows := []results.DiscoveryCSVRow{
		{Tissue: "Kidney", Rate: 8.9, Significant: 44, Total: 494},
		{Tissue: "Liver", Rate: 9.7, Significant: 49, Total: 505},
	}
	fig := DiscoveryFromCSV(rows)
	chart := fig.Panels[0].(*render.BarChart)

	if chart.Bars[0].Label != "Liver" {
		t.Errorf("first bar = %q, want Liver (highest rate first)", chart.Bars[0].Label)
	}
	if chart.Bars[0].ValueLabel != "49/505" {
		t.Errorf("value label = %q, want 49/505", chart.Bars[0].ValueLabel)
	}
	// input order untouched
	if rows[0].Tissue != "Kidney" {
		t.Error("builder must not reorder the caller's slice")
	}
}

func TestGeneHeatmap(t *testing.T) {
	doc := &results.Document{
		TopTargetGenes: []results.TargetGene{
			{Gene: "Wee1", TissuesSignificant: 6},
			{Gene: "Yap1", TissuesSignificant: 4},
		},
		TopClockGenes: []results.ClockGene{{Gene: "Bmal1"}, {Gene: "Per2"}},
	}
	m := views.New(doc).GeneSignificanceMatrix(8)
	fig := GeneHeatmap(m, 970)

	if fig.Name != "figure2_heatmap" {
		t.Errorf("name = %q", fig.Name)
	}
	hm := fig.Panels[0].(*render.Heatmap)
	if hm.Min != 0 || hm.Max != 6 {
		t.Errorf("color range = [%v,%v], want [0,6]", hm.Min, hm.Max)
	}
	if hm.CellLabels[0][1] != "6" || hm.CellLabels[1][0] != "4" {
		t.Errorf("cell labels = %v", hm.CellLabels)
	}
	if hm.Annotations[0] != "Data: 970 Bonferroni-significant pairs" {
		t.Errorf("annotation = %q", hm.Annotations[0])
	}
}

func TestTissueHeatmap_NameAndCells(t *testing.T) {
	doc := &results.HeatmapDoc{
		ClockGenes: []string{"Bmal1", "Per2"},
		Tissues: map[string]map[string][]*float64{
			"Brown Adipose": {"Wee1": {f(3.25), nil}},
		},
	}
	m, err := views.TissueMatrix(doc, "Brown Adipose")
	if err != nil {
		t.Fatalf("TissueMatrix: %v", err)
	}
	fig := TissueHeatmap("Brown Adipose", m)

	if fig.Name != "figure2_heatmap_Brown_Adipose" {
		t.Errorf("name = %q", fig.Name)
	}
	hm := fig.Panels[0].(*render.Heatmap)
	if hm.CellLabels[0][0] != "3.25" || hm.CellLabels[0][1] != "0.00" {
		t.Errorf("cell labels = %v", hm.CellLabels)
	}
}

func f(v float64) *float64 { return &v }

func TestModel_GatedBorders(t *testing.T) {
	profile := &views.Wee1Profile{
		Tissues:          []string{"Liver", "Muscle", "Lung", "Kidney", "Heart", "Cerebellum"},
		ClockGenesGating: 8,
	}
	fig := Model(profile)

	if fig.Name != "figure3_model" {
		t.Errorf("name = %q", fig.Name)
	}
	d := fig.Panels[0].(*render.Diagram)
	if len(d.Boxes) != 5 || len(d.Arrows) != 5 {
		t.Fatalf("boxes/arrows = %d/%d, want 5/5", len(d.Boxes), len(d.Arrows))
	}
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	for _, b := range d.Boxes {
		if b.Border != white {
			t.Errorf("box %s should carry the gating highlight", b.Label)
		}
	}
	if len(d.Notes) == 0 || d.Notes[0].Text != "Wee1 gated in 6 tissues: Liver, Muscle, Lung, Kidney..." {
		t.Errorf("subtitle = %+v", d.Notes)
	}
}

func TestModelFromPathway(t *testing.T) {
	model := &results.PathwayModel{
		Tissues: []results.PathwayTissue{
			{Name: "Liver", Pathway: "Metabolism", Targets: []string{"Wee1"}},
			{Name: "Heart", Pathway: "Hippo", Targets: []string{"Yap1", "Tead1"}},
		},
	}
	fig := ModelFromPathway(model)
	d := fig.Panels[0].(*render.Diagram)

	if len(d.Boxes) != 2 {
		t.Fatalf("box count = %d, want 2", len(d.Boxes))
	}
	if d.Boxes[1].Caption != "Hippo\n(Yap1, Tead1)" {
		t.Errorf("caption = %q", d.Boxes[1].Caption)
	}
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if d.Boxes[0].Border != white {
		t.Error("Wee1-targeted tissue should be highlighted")
	}
	if d.Boxes[1].Border == white {
		t.Error("tissue without Wee1 target should not be highlighted")
	}
}

func TestWee1Profile(t *testing.T) {
	profile := &views.Wee1Profile{
		Tissues:                 []string{"Liver", "Muscle", "Lung"},
		TissuesWithSignificance: 3,
		ClockGenesGating:        8,
		AvgEffectSize:           0.412,
		BiologicalRole:          "G2/M checkpoint kinase",
		CancerRelevance:         "WEE1 inhibitors in trials",
	}
	fig := Wee1Profile(profile, 4)

	if fig.Name != "figure4_wee1_profile" || fig.Cols != 2 {
		t.Errorf("name/cols = %q/%d", fig.Name, fig.Cols)
	}
	chart := fig.Panels[0].(*render.BarChart)
	if !chart.Horizontal || len(chart.Bars) != 3 {
		t.Fatalf("coverage panel: horizontal=%v bars=%d", chart.Horizontal, len(chart.Bars))
	}
	if chart.Bars[0].ValueLabel != "All 8 clock genes" {
		t.Errorf("bar note = %q", chart.Bars[0].ValueLabel)
	}

	stats := fig.Panels[1].(*render.StatsBox)
	var found int
	for _, line := range stats.Lines {
		switch line {
		case "Clock Genes Gating Wee1:    8 / 8",
			"Average Effect Size:        0.412",
			"Validated: 4 datasets":
			found++
		}
	}
	if found != 3 {
		t.Errorf("stats box missing expected lines, got %v", stats.Lines)
	}
}

func TestValidation(t *testing.T) {
	funnel := []views.FunnelStage{
		{Stage: views.StageTested, Count: 10000},
		{Stage: views.StageBonferroni, Count: 970},
		{Stage: views.StageFDR, Count: 1500},
		{Stage: views.StageHighConfidence, Count: 50},
		{Stage: views.StageTier0, Count: 3},
	}
	ep := views.EigenperiodComparison{HealthyMean: 23.8, CancerMean: 11.2, PValue: 1.2e-5, Separation: 12.6}
	summary := results.ExecutiveSummary{TotalDatasets: 4, TotalPairsTested: 10000, SignificantBonferroni: 970, SignificantFDR: 1500, HighConfidencePairs: 50, Tier0Candidates: 3}

	fig := Validation(funnel, ep, summary)
	if fig.Name != "figure5_validation" || fig.Cols != 3 {
		t.Fatalf("name/cols = %q/%d", fig.Name, fig.Cols)
	}

	eigen := fig.Panels[0].(*render.BarChart)
	if !eigen.HasRefLine || eigen.RefLine != 24 {
		t.Error("eigenperiod panel should carry the 24h reference line")
	}
	if eigen.Bars[0].ValueLabel != "23.8h" || eigen.Bars[1].ValueLabel != "11.2h" {
		t.Errorf("eigenperiod labels = %q/%q", eigen.Bars[0].ValueLabel, eigen.Bars[1].ValueLabel)
	}

	fc := fig.Panels[1].(*render.BarChart)
	if len(fc.Bars) != 5 {
		t.Fatalf("funnel bars = %d, want 5", len(fc.Bars))
	}
	if got, want := fc.Bars[0].Value, math.Log10(10000); math.Abs(got-want) > 1e-9 {
		t.Errorf("funnel height = %v, want log10(10000)", got)
	}
	if fc.Bars[0].ValueLabel != "10,000" {
		t.Errorf("funnel label = %q, want raw count", fc.Bars[0].ValueLabel)
	}
	if fc.Bars[4].Label != "TIER 0" {
		t.Errorf("last stage label = %q", fc.Bars[4].Label)
	}
}

func TestValidation_ZeroCountStage(t *testing.T) {
	funnel := []views.FunnelStage{
		{Stage: views.StageTested, Count: 10},
		{Stage: views.StageBonferroni, Count: 0},
		{Stage: views.StageFDR, Count: 0},
		{Stage: views.StageHighConfidence, Count: 0},
		{Stage: views.StageTier0, Count: 0},
	}
	fig := Validation(funnel, views.EigenperiodComparison{}, results.ExecutiveSummary{})
	fc := fig.Panels[1].(*render.BarChart)
	if fc.Bars[1].Value != 0 {
		t.Errorf("zero count should plot at height 0, got %v", fc.Bars[1].Value)
	}
}
