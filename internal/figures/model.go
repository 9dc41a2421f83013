package figures

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/vg"

	"par2fig/internal/render"
	"par2fig/internal/results"
	"par2fig/internal/views"
)

// tissueColors and tissuePositions fix the diagram layout; the data decides
// which tissues appear and which get the gating highlight.
var tissueColors = map[string]color.RGBA{
	"Liver":        Red,
	"Heart":        Purple,
	"Kidney":       Blue,
	"Muscle":       Green,
	"Lung":         Orange,
	"Cerebellum":   Green,
	"Hypothalamus": Orange,
}

var tissuePositions = map[string][2]float64{
	"Liver":        {2, 4.5},
	"Muscle":       {5, 2},
	"Lung":         {9, 2},
	"Heart":        {12, 4.5},
	"Kidney":       {7, 4},
	"Cerebellum":   {12, 4.5},
	"Hypothalamus": {7, 4},
}

var modelPathways = map[string]string{
	"Liver":  "Metabolism\n(Wee1)",
	"Muscle": "Cell Cycle\n(Wee1)",
	"Lung":   "Repair\n(Wee1)",
	"Heart":  "Hippo\n(Yap1, Tead1)",
	"Kidney": "Homeostasis",
}

const (
	hubX, hubY, hubR = 7.0, 8.0, 1.2
	diagramW         = 14.0
	diagramH         = 10.0
)

// Model builds the figure-3 protection-model schematic. The Wee1-gated
// tissue set comes from the tier-0 profile; gated tissues get a heavy white
// border.
func Model(profile *views.Wee1Profile) *render.Figure {
	gated := make(map[string]bool, len(profile.Tissues))
	for _, t := range profile.Tissues {
		gated[t] = true
	}

	names := []string{"Liver", "Muscle", "Lung", "Heart", "Kidney"}
	nodes := make([]modelNode, len(names))
	for i, name := range names {
		nodes[i] = modelNode{name: name, caption: modelPathways[name]}
	}

	preview := profile.Tissues
	if len(preview) > 4 {
		preview = preview[:4]
	}
	subtitle := fmt.Sprintf("Wee1 gated in %d tissues: %s...",
		len(profile.Tissues), strings.Join(preview, ", "))

	return modelFigure(nodes, gated, subtitle)
}

// ModelFromPathway builds the standalone figure-3 variant: tissue set,
// pathway captions, and gated targets come from the fragment file.
func ModelFromPathway(model *results.PathwayModel) *render.Figure {
	nodes := make([]modelNode, len(model.Tissues))
	gated := make(map[string]bool)
	for i, t := range model.Tissues {
		caption := t.Pathway
		if len(t.Targets) > 0 {
			caption = fmt.Sprintf("%s\n(%s)", t.Pathway, strings.Join(t.Targets, ", "))
		}
		nodes[i] = modelNode{name: t.Name, caption: caption}
		for _, target := range t.Targets {
			if target == "Wee1" {
				gated[t.Name] = true
			}
		}
	}
	return modelFigure(nodes, gated, "")
}

type modelNode struct {
	name    string
	caption string
}

func modelFigure(nodes []modelNode, gated map[string]bool, subtitle string) *render.Figure {
	d := &render.Diagram{
		Title: "Tissue Vulnerability Protection Model",
		XMax:  diagramW,
		YMax:  diagramH,
		Hub: render.Hub{
			Label:  "CIRCADIAN\nCLOCK",
			X:      hubX,
			Y:      hubY,
			Radius: hubR,
			Fill:   Teal,
			Border: DarkTeal,
		},
	}

	for i, n := range nodes {
		pos, ok := tissuePositions[n.name]
		if !ok {
			// unplaced tissues fan out along the midline
			pos = [2]float64{2 + 2.5*float64(i), 5}
		}
		fill, ok := tissueColors[n.name]
		if !ok {
			fill = Gray
		}
		border := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
		borderW := vg.Points(1.5)
		if gated[n.name] {
			border = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			borderW = vg.Points(3)
		}
		d.Boxes = append(d.Boxes, render.Box{
			Label:   n.name,
			Caption: n.caption,
			X:       pos[0],
			Y:       pos[1],
			W:       2.6,
			H:       2,
			Fill:    fill,
			Border:  border,
			BorderW: borderW,
		})
		d.Arrows = append(d.Arrows, render.Arrow{
			X0:    hubX + (pos[0]-hubX)*0.25,
			Y0:    hubY - hubR*0.9,
			X1:    pos[0],
			Y1:    pos[1] + 1.1,
			Color: Teal,
		})
	}

	if subtitle != "" {
		d.Notes = append(d.Notes, render.Note{
			Text:   subtitle,
			X:      diagramW / 2,
			Y:      9.3,
			Color:  Gray,
			Italic: true,
		})
	}
	d.Notes = append(d.Notes, render.Note{
		Text:  "White border = Wee1 gating confirmed",
		X:     2.2,
		Y:     0.8,
		Color: Gray,
	})

	return &render.Figure{
		Name:   NameModel,
		Width:  14 * vg.Inch,
		Height: 10 * vg.Inch,
		Panels: []render.Panel{d},
	}
}
