package views

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"par2fig/internal/results"
)

// HeatmapTissues lists the tissues of a standalone heatmap fragment in
// deterministic (sorted) order.
func HeatmapTissues(doc *results.HeatmapDoc) []string {
	tissues := make([]string, 0, len(doc.Tissues))
	for t := range doc.Tissues {
		tissues = append(tissues, t)
	}
	sort.Strings(tissues)
	return tissues
}

// TissueMatrix builds the -log10(p) grid for one tissue of a standalone
// heatmap fragment. Target genes are ordered alphabetically for determinism;
// untested cells (nil values or short rows) plot as zero.
func TissueMatrix(doc *results.HeatmapDoc, tissue string) (*GeneMatrix, error) {
	targets, ok := doc.Tissues[tissue]
	if !ok {
		return nil, &results.MissingFieldError{Path: "tissues." + tissue}
	}

	if len(targets) == 0 {
		return nil, &results.MalformedFieldError{Path: "tissues." + tissue, Reason: "no target genes"}
	}
	genes := make([]string, 0, len(targets))
	for g := range targets {
		genes = append(genes, g)
	}
	sort.Strings(genes)

	m := &GeneMatrix{
		RowLabels: genes,
		ColLabels: append([]string(nil), doc.ClockGenes...),
		Values:    mat.NewDense(len(genes), len(doc.ClockGenes), nil),
	}
	for i, gene := range genes {
		for j, val := range targets[gene] {
			if val != nil {
				m.Values.Set(i, j, *val)
			}
		}
	}
	return m, nil
}
