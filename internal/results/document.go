// Package results loads the comprehensive results document produced by the
// upstream circadian-gating pipeline and projects it into validated, typed
// values. All schema errors surface here, at load time, with the offending
// JSON field path; downstream packages never touch raw JSON.
package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultPath is the results document location relative to the repo root.
const DefaultPath = "COMPREHENSIVE_RESULTS.json"

// Document is the validated, immutable analysis results document.
// It is loaded once per process and never mutated.
type Document struct {
	ExecutiveSummary     ExecutiveSummary
	ByStudy              map[string]Study
	TopTargetGenes       []TargetGene
	TopClockGenes        []ClockGene
	CrossTissueConsensus CrossTissueConsensus
	EigenperiodAnalysis  Eigenperiod
}

// ExecutiveSummary carries the headline counts of the analysis.
type ExecutiveSummary struct {
	TotalDatasets         int
	TotalPairsTested      int
	SignificantBonferroni int
	SignificantFDR        int
	HighConfidencePairs   int
	Tier0Candidates       int
}

// Study is the per-study record keyed by GEO accession in ByStudy.
// SignificantPairs and PairsTested are optional numerator/denominator
// counts; zero when the upstream pipeline did not record them.
type Study struct {
	SignificantBonfRate float64
	Tissues             []string
	SignificantPairs    int
	PairsTested         int
}

// TargetGene is one entry of the ranked topTargetGenes sequence.
// Order is meaningful: index 0 is the strongest candidate.
type TargetGene struct {
	Gene               string
	TissuesSignificant int
}

// ClockGene is one entry of the ranked topClockGenes sequence.
type ClockGene struct {
	Gene string
}

// CrossTissueConsensus holds the tier-0 candidate summaries.
type CrossTissueConsensus struct {
	Wee1Summary Wee1Summary
}

// Wee1Summary is the consensus record for the top tier-0 candidate.
type Wee1Summary struct {
	TissueList              string
	TissuesWithSignificance int
	ClockGenesGating        int
	AvgEffectSize           float64
	BiologicalRole          string
	CancerRelevance         string
}

// Eigenperiod carries the healthy-vs-cancer eigenperiod comparison.
// Separation is nil when the upstream pipeline omitted it; when present it
// may be stale relative to the means (the projector recomputes it).
type Eigenperiod struct {
	HealthyTissuesMean float64
	CancerContextMean  float64
	PValue             float64
	Separation         *float64
}

// raw decode layer: pointer fields distinguish absent keys from zero values
// so validation can name the exact missing path.

type rawDocument struct {
	ExecutiveSummary     *rawExecutiveSummary `json:"executiveSummary"`
	ByStudy              map[string]rawStudy  `json:"byStudy"`
	TopTargetGenes       []rawTargetGene      `json:"topTargetGenes"`
	TopClockGenes        []rawClockGene       `json:"topClockGenes"`
	CrossTissueConsensus *rawConsensus        `json:"crossTissueConsensus"`
	EigenperiodAnalysis  *rawEigenperiod      `json:"eigenperiodAnalysis"`
}

type rawExecutiveSummary struct {
	TotalDatasets         *int `json:"totalDatasets"`
	TotalPairsTested      *int `json:"totalPairsTested"`
	SignificantBonferroni *int `json:"significantBonferroni"`
	SignificantFDR        *int `json:"significantFDR"`
	HighConfidencePairs   *int `json:"highConfidencePairs"`
	Tier0Candidates       *int `json:"tier0Candidates"`
}

type rawStudy struct {
	SignificantBonfRate *float64 `json:"significantBonfRate"`
	Tissues             []string `json:"tissues"`
	SignificantPairs    int      `json:"significantPairs"`
	PairsTested         int      `json:"pairsTested"`
}

type rawTargetGene struct {
	Gene               *string `json:"gene"`
	TissuesSignificant *int    `json:"tissuesSignificant"`
}

type rawClockGene struct {
	Gene *string `json:"gene"`
}

type rawConsensus struct {
	Tier0Candidates *rawTier0 `json:"tier0Candidates"`
}

type rawTier0 struct {
	Wee1Summary *rawWee1Summary `json:"wee1Summary"`
}

type rawWee1Summary struct {
	TissueList              *string  `json:"tissueList"`
	TissuesWithSignificance *int     `json:"tissuesWithSignificance"`
	ClockGenesGating        *int     `json:"clockGenesGating"`
	AvgEffectSize           *float64 `json:"avgEffectSize"`
	BiologicalRole          string   `json:"biologicalRole"`
	CancerRelevance         string   `json:"cancerRelevance"`
}

type rawEigenperiod struct {
	HealthyTissuesMean *float64 `json:"healthyTissuesMean"`
	CancerContextMean  *float64 `json:"cancerContextMean"`
	PValue             *float64 `json:"pValue"`
	Separation         *float64 `json:"separation"`
}

// Load reads, parses, and validates the results document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a results document from bytes.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, malformed(typeErr.Field, "expected %s, got %s", typeErr.Type, typeErr.Value)
		}
		return nil, fmt.Errorf("results: invalid JSON: %w", err)
	}
	return project(&raw)
}

// project converts the raw pointer-laden decode into a value Document,
// reporting the first missing or out-of-range field.
func project(raw *rawDocument) (*Document, error) {
	var doc Document

	es := raw.ExecutiveSummary
	if es == nil {
		return nil, missing("executiveSummary")
	}
	counts := []struct {
		path string
		val  *int
		dst  *int
	}{
		{"executiveSummary.totalDatasets", es.TotalDatasets, &doc.ExecutiveSummary.TotalDatasets},
		{"executiveSummary.totalPairsTested", es.TotalPairsTested, &doc.ExecutiveSummary.TotalPairsTested},
		{"executiveSummary.significantBonferroni", es.SignificantBonferroni, &doc.ExecutiveSummary.SignificantBonferroni},
		{"executiveSummary.significantFDR", es.SignificantFDR, &doc.ExecutiveSummary.SignificantFDR},
		{"executiveSummary.highConfidencePairs", es.HighConfidencePairs, &doc.ExecutiveSummary.HighConfidencePairs},
		{"executiveSummary.tier0Candidates", es.Tier0Candidates, &doc.ExecutiveSummary.Tier0Candidates},
	}
	for _, c := range counts {
		if c.val == nil {
			return nil, missing(c.path)
		}
		if *c.val < 0 {
			return nil, malformed(c.path, "negative count %d", *c.val)
		}
		*c.dst = *c.val
	}
	if n, total := doc.ExecutiveSummary.SignificantBonferroni, doc.ExecutiveSummary.TotalPairsTested; n > total {
		return nil, malformed("executiveSummary.significantBonferroni", "%d exceeds totalPairsTested %d", n, total)
	}
	if n, total := doc.ExecutiveSummary.SignificantFDR, doc.ExecutiveSummary.TotalPairsTested; n > total {
		return nil, malformed("executiveSummary.significantFDR", "%d exceeds totalPairsTested %d", n, total)
	}

	if len(raw.ByStudy) == 0 {
		return nil, missing("byStudy")
	}
	doc.ByStudy = make(map[string]Study, len(raw.ByStudy))
	for id, rs := range raw.ByStudy {
		path := "byStudy." + id
		if rs.SignificantBonfRate == nil {
			return nil, missing(path + ".significantBonfRate")
		}
		rate := *rs.SignificantBonfRate
		if rate < 0 || rate > 1 {
			return nil, malformed(path+".significantBonfRate", "rate %v outside [0,1]", rate)
		}
		doc.ByStudy[id] = Study{
			SignificantBonfRate: rate,
			Tissues:             rs.Tissues,
			SignificantPairs:    rs.SignificantPairs,
			PairsTested:         rs.PairsTested,
		}
	}

	if len(raw.TopTargetGenes) == 0 {
		return nil, missing("topTargetGenes")
	}
	doc.TopTargetGenes = make([]TargetGene, len(raw.TopTargetGenes))
	for i, tg := range raw.TopTargetGenes {
		path := fmt.Sprintf("topTargetGenes[%d]", i)
		if tg.Gene == nil {
			return nil, missing(path + ".gene")
		}
		if tg.TissuesSignificant == nil {
			return nil, missing(path + ".tissuesSignificant")
		}
		if *tg.TissuesSignificant < 0 {
			return nil, malformed(path+".tissuesSignificant", "negative count %d", *tg.TissuesSignificant)
		}
		doc.TopTargetGenes[i] = TargetGene{Gene: *tg.Gene, TissuesSignificant: *tg.TissuesSignificant}
	}

	if len(raw.TopClockGenes) == 0 {
		return nil, missing("topClockGenes")
	}
	doc.TopClockGenes = make([]ClockGene, len(raw.TopClockGenes))
	for i, cg := range raw.TopClockGenes {
		if cg.Gene == nil {
			return nil, missing(fmt.Sprintf("topClockGenes[%d].gene", i))
		}
		doc.TopClockGenes[i] = ClockGene{Gene: *cg.Gene}
	}

	if raw.CrossTissueConsensus == nil {
		return nil, missing("crossTissueConsensus")
	}
	if raw.CrossTissueConsensus.Tier0Candidates == nil {
		return nil, missing("crossTissueConsensus.tier0Candidates")
	}
	w := raw.CrossTissueConsensus.Tier0Candidates.Wee1Summary
	if w == nil {
		return nil, missing("crossTissueConsensus.tier0Candidates.wee1Summary")
	}
	const wPath = "crossTissueConsensus.tier0Candidates.wee1Summary"
	if w.TissueList == nil {
		return nil, missing(wPath + ".tissueList")
	}
	if w.TissuesWithSignificance == nil {
		return nil, missing(wPath + ".tissuesWithSignificance")
	}
	if w.ClockGenesGating == nil {
		return nil, missing(wPath + ".clockGenesGating")
	}
	if *w.ClockGenesGating < 0 || *w.ClockGenesGating > 8 {
		return nil, malformed(wPath+".clockGenesGating", "count %d outside [0,8]", *w.ClockGenesGating)
	}
	if w.AvgEffectSize == nil {
		return nil, missing(wPath + ".avgEffectSize")
	}
	doc.CrossTissueConsensus.Wee1Summary = Wee1Summary{
		TissueList:              *w.TissueList,
		TissuesWithSignificance: *w.TissuesWithSignificance,
		ClockGenesGating:        *w.ClockGenesGating,
		AvgEffectSize:           *w.AvgEffectSize,
		BiologicalRole:          w.BiologicalRole,
		CancerRelevance:         w.CancerRelevance,
	}

	ep := raw.EigenperiodAnalysis
	if ep == nil {
		return nil, missing("eigenperiodAnalysis")
	}
	if ep.HealthyTissuesMean == nil {
		return nil, missing("eigenperiodAnalysis.healthyTissuesMean")
	}
	if ep.CancerContextMean == nil {
		return nil, missing("eigenperiodAnalysis.cancerContextMean")
	}
	if ep.PValue == nil {
		return nil, missing("eigenperiodAnalysis.pValue")
	}
	if *ep.PValue <= 0 || *ep.PValue > 1 {
		return nil, malformed("eigenperiodAnalysis.pValue", "p-value %v outside (0,1]", *ep.PValue)
	}
	doc.EigenperiodAnalysis = Eigenperiod{
		HealthyTissuesMean: *ep.HealthyTissuesMean,
		CancerContextMean:  *ep.CancerContextMean,
		PValue:             *ep.PValue,
		Separation:         ep.Separation,
	}

	return &doc, nil
}
