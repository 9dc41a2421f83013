// Package views projects the loaded results document into the tabular and
// rectangular shapes the figure builders consume. Projection is reshaping
// only: no statistic computed upstream is ever recomputed here (the single
// exception is the defensive eigenperiod-separation check).
package views

import (
	"log/slog"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"par2fig/internal/logging"
	"par2fig/internal/results"
)

// Study accessions referenced by the figures. Category assignment is lexical
// dispatch on these identifiers, never inferred from values.
const (
	PrimaryStudy  = "GSE54650"  // mouse circadian atlas, 12 tissues
	CancerStudy   = "GSE221103" // MYC-ON cancer context
	OrganoidStudy = "GSE157357" // intestinal organoids
)

// Category classifies a discovery-rate row.
type Category int

const (
	CategoryTissue Category = iota
	CategoryCancer
	CategoryOrganoid
)

func (c Category) String() string {
	switch c {
	case CategoryCancer:
		return "Cancer"
	case CategoryOrganoid:
		return "Organoid"
	default:
		return "Tissue"
	}
}

// DiscoveryRow is one bar of the discovery-rate figure. Rate is a percentage
// (stored fraction × 100). Significant and Total are the study-level counts
// when the document records them, zero otherwise.
type DiscoveryRow struct {
	Label       string
	Rate        float64
	Significant int
	Total       int
	Category    Category
}

// FunnelStage is one stage of the significance funnel.
type FunnelStage struct {
	Stage Stage
	Count int
}

// Stage identifies a funnel stage in its fixed order.
type Stage int

const (
	StageTested Stage = iota
	StageBonferroni
	StageFDR
	StageHighConfidence
	StageTier0
)

func (s Stage) String() string {
	switch s {
	case StageTested:
		return "Tested"
	case StageBonferroni:
		return "BonferroniSignificant"
	case StageFDR:
		return "FDRSignificant"
	case StageHighConfidence:
		return "HighConfidence"
	case StageTier0:
		return "Tier0"
	}
	return "Unknown"
}

// Wee1Profile is the parsed tier-0 candidate summary.
type Wee1Profile struct {
	Tissues                 []string
	TissuesWithSignificance int
	ClockGenesGating        int
	AvgEffectSize           float64
	BiologicalRole          string
	CancerRelevance         string
}

// EigenperiodComparison is the healthy-vs-cancer eigenperiod view.
// Separation is always |CancerMean − HealthyMean|, recomputed here.
type EigenperiodComparison struct {
	HealthyMean float64
	CancerMean  float64
	PValue      float64
	Separation  float64
}

// GeneMatrix is a labeled 2-D grid for heatmap rendering.
type GeneMatrix struct {
	RowLabels []string // target genes, rank order preserved
	ColLabels []string // clock genes, rank order preserved
	Values    *mat.Dense
}

// Projector exposes the typed accessor views over a validated document.
// All methods are pure and idempotent; the document is never mutated.
type Projector struct {
	doc *results.Document
	log *slog.Logger
}

// New wraps a validated document in a Projector.
func New(doc *results.Document) *Projector {
	return &Projector{doc: doc, log: logging.New("views")}
}

// DiscoveryRateTable enumerates the primary study's tissues at that study's
// rate, then appends one cancer-context row and one organoid row. Row count
// is always len(primary tissues) + 2.
func (p *Projector) DiscoveryRateTable() ([]DiscoveryRow, error) {
	primary, ok := p.doc.ByStudy[PrimaryStudy]
	if !ok {
		return nil, &results.MissingFieldError{Path: "byStudy." + PrimaryStudy}
	}
	cancer, ok := p.doc.ByStudy[CancerStudy]
	if !ok {
		return nil, &results.MissingFieldError{Path: "byStudy." + CancerStudy}
	}
	organoid, ok := p.doc.ByStudy[OrganoidStudy]
	if !ok {
		return nil, &results.MissingFieldError{Path: "byStudy." + OrganoidStudy}
	}

	rows := make([]DiscoveryRow, 0, len(primary.Tissues)+2)
	for _, tissue := range primary.Tissues {
		rows = append(rows, DiscoveryRow{
			Label:       tissue,
			Rate:        primary.SignificantBonfRate * 100,
			Significant: primary.SignificantPairs,
			Total:       primary.PairsTested,
			Category:    CategoryTissue,
		})
	}
	rows = append(rows, DiscoveryRow{
		Label:       "MYC-ON (Cancer)",
		Rate:        cancer.SignificantBonfRate * 100,
		Significant: cancer.SignificantPairs,
		Total:       cancer.PairsTested,
		Category:    CategoryCancer,
	})
	rows = append(rows, DiscoveryRow{
		Label:       "Organoids",
		Rate:        organoid.SignificantBonfRate * 100,
		Significant: organoid.SignificantPairs,
		Total:       organoid.PairsTested,
		Category:    CategoryOrganoid,
	})
	return rows, nil
}

// GeneSignificanceMatrix builds the target-gene × clock-gene grid. Every cell
// in row i holds that target's tissuesSignificant count, broadcast across all
// clock-gene columns: the source data records only target-level tissue
// coverage, not per-pair values, and that shape is preserved deliberately.
// maxTargets caps the row count; zero or negative means all targets.
func (p *Projector) GeneSignificanceMatrix(maxTargets int) *GeneMatrix {
	targets := p.doc.TopTargetGenes
	if maxTargets > 0 && maxTargets < len(targets) {
		targets = targets[:maxTargets]
	}
	clocks := p.doc.TopClockGenes

	m := &GeneMatrix{
		RowLabels: make([]string, len(targets)),
		ColLabels: make([]string, len(clocks)),
		Values:    mat.NewDense(len(targets), len(clocks), nil),
	}
	for j, c := range clocks {
		m.ColLabels[j] = c.Gene
	}
	for i, t := range targets {
		m.RowLabels[i] = t.Gene
		for j := range clocks {
			m.Values.Set(i, j, float64(t.TissuesSignificant))
		}
	}
	return m
}

// Wee1Profile parses the comma-separated tissue list of the tier-0 summary.
// Joining the returned tissues with ", " reproduces the stored string.
func (p *Projector) Wee1Profile() (*Wee1Profile, error) {
	w := p.doc.CrossTissueConsensus.Wee1Summary
	tissues := strings.Split(w.TissueList, ", ")
	if len(tissues) == 1 && tissues[0] == "" {
		return nil, &results.MalformedFieldError{
			Path:   "crossTissueConsensus.tier0Candidates.wee1Summary.tissueList",
			Reason: "empty tissue list",
		}
	}
	return &Wee1Profile{
		Tissues:                 tissues,
		TissuesWithSignificance: w.TissuesWithSignificance,
		ClockGenesGating:        w.ClockGenesGating,
		AvgEffectSize:           w.AvgEffectSize,
		BiologicalRole:          w.BiologicalRole,
		CancerRelevance:         w.CancerRelevance,
	}, nil
}

// SignificanceFunnel returns the five funnel stages in fixed order with
// counts copied verbatim from the executive summary. Monotonic decrease is a
// property of valid input, not enforced here.
func (p *Projector) SignificanceFunnel() []FunnelStage {
	s := p.doc.ExecutiveSummary
	return []FunnelStage{
		{StageTested, s.TotalPairsTested},
		{StageBonferroni, s.SignificantBonferroni},
		{StageFDR, s.SignificantFDR},
		{StageHighConfidence, s.HighConfidencePairs},
		{StageTier0, s.Tier0Candidates},
	}
}

// EigenperiodComparison copies the eigenperiod record and recomputes the
// separation from the means. A stored separation that disagrees beyond 1e-9
// is logged and discarded; the recomputed value always wins.
func (p *Projector) EigenperiodComparison() EigenperiodComparison {
	ep := p.doc.EigenperiodAnalysis
	sep := math.Abs(ep.CancerContextMean - ep.HealthyTissuesMean)
	if ep.Separation != nil && math.Abs(*ep.Separation-sep) > 1e-9 {
		p.log.Warn("stored eigenperiod separation is stale, using recomputed value",
			slog.Float64("stored", *ep.Separation),
			slog.Float64("recomputed", sep))
	}
	return EigenperiodComparison{
		HealthyMean: ep.HealthyTissuesMean,
		CancerMean:  ep.CancerContextMean,
		PValue:      ep.PValue,
		Separation:  sep,
	}
}

// Summary returns the executive summary verbatim for annotation text.
func (p *Projector) Summary() results.ExecutiveSummary {
	return p.doc.ExecutiveSummary
}
