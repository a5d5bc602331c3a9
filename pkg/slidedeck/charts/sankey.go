package charts

import (
	"fmt"
	"sort"
)

const (
	sankeyNodeWidth   = 14.0
	sankeyNodePadding = 12.0
)

// SankeyNode is a positioned node of a Sankey layout.
type SankeyNode struct {
	Name   string
	Column int
	Value  float64
	X, Y   float64
	Height float64
}

// SankeyLink is a positioned band between two nodes.
type SankeyLink struct {
	Flow
	SourceY, TargetY float64
	Thickness        float64
}

// SankeyLayout is the computed geometry of a Sankey diagram.
type SankeyLayout struct {
	Nodes []SankeyNode
	Links []SankeyLink
}

// Node returns the positioned node called name.
func (l SankeyLayout) Node(name string) (SankeyNode, bool) {
	for _, n := range l.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return SankeyNode{}, false
}

// LayoutSankey places flows into columns by their longest path from a
// source and scales every node and band to fit the given area. Flows must
// form an acyclic graph.
func LayoutSankey(flows []Flow, width, height int) (SankeyLayout, error) {
	if len(flows) == 0 {
		return SankeyLayout{}, fmt.Errorf("sankey: no flows")
	}

	var order []string
	in := map[string]float64{}
	out := map[string]float64{}
	seen := map[string]bool{}
	for _, f := range flows {
		if f.Value <= 0 {
			return SankeyLayout{}, fmt.Errorf("sankey: flow %s → %s has non-positive value", f.Source, f.Target)
		}
		for _, n := range []string{f.Source, f.Target} {
			if !seen[n] {
				seen[n] = true
				order = append(order, n)
			}
		}
		out[f.Source] += f.Value
		in[f.Target] += f.Value
	}

	column := map[string]int{}
	for pass := 0; ; pass++ {
		if pass > len(order) {
			return SankeyLayout{}, fmt.Errorf("sankey: flows contain a cycle")
		}
		changed := false
		for _, f := range flows {
			if column[f.Target] < column[f.Source]+1 {
				column[f.Target] = column[f.Source] + 1
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	columns := 0
	byColumn := map[int][]string{}
	for _, n := range order {
		c := column[n]
		byColumn[c] = append(byColumn[c], n)
		if c+1 > columns {
			columns = c + 1
		}
	}

	plotW := float64(width) - 2*chartMargin
	plotH := float64(height) - 2*chartMargin

	scale := 0.0
	for c := 0; c < columns; c++ {
		total := 0.0
		for _, n := range byColumn[c] {
			total += max(in[n], out[n])
		}
		avail := plotH - sankeyNodePadding*float64(len(byColumn[c])-1)
		if s := avail / total; scale == 0 || s < scale {
			scale = s
		}
	}

	step := 0.0
	if columns > 1 {
		step = (plotW - sankeyNodeWidth) / float64(columns-1)
	}

	layout := SankeyLayout{}
	index := map[string]int{}
	for c := 0; c < columns; c++ {
		y := chartMargin
		for _, n := range byColumn[c] {
			v := max(in[n], out[n])
			index[n] = len(layout.Nodes)
			layout.Nodes = append(layout.Nodes, SankeyNode{
				Name:   n,
				Column: c,
				Value:  v,
				X:      chartMargin + float64(c)*step,
				Y:      y,
				Height: v * scale,
			})
			y += v*scale + sankeyNodePadding
		}
	}

	outOffset := map[string]float64{}
	inOffset := map[string]float64{}
	links := append([]Flow(nil), flows...)
	sort.SliceStable(links, func(i, j int) bool {
		return layout.Nodes[index[links[i].Target]].Y < layout.Nodes[index[links[j].Target]].Y
	})
	for _, f := range links {
		src := layout.Nodes[index[f.Source]]
		dst := layout.Nodes[index[f.Target]]
		t := f.Value * scale
		layout.Links = append(layout.Links, SankeyLink{
			Flow:      f,
			SourceY:   src.Y + outOffset[f.Source],
			TargetY:   dst.Y + inOffset[f.Target],
			Thickness: t,
		})
		outOffset[f.Source] += t
		inOffset[f.Target] += t
	}

	return layout, nil
}

// SankeySVG renders flows as a Sankey diagram.
func SankeySVG(flows []Flow, width, height int) (string, error) {
	layout, err := LayoutSankey(flows, width, height)
	if err != nil {
		return "", err
	}

	doc := newDoc(width, height)
	color := map[string]string{}
	for i, n := range layout.Nodes {
		color[n.Name] = palette[i%len(palette)]
	}

	for _, l := range layout.Links {
		src, _ := layout.Node(l.Source)
		dst, _ := layout.Node(l.Target)
		x0 := src.X + sankeyNodeWidth
		x1 := dst.X
		xm := (x0 + x1) / 2
		doc.path(fmt.Sprintf("M%.2f %.2f C%.2f %.2f %.2f %.2f %.2f %.2f L%.2f %.2f C%.2f %.2f %.2f %.2f %.2f %.2f Z",
			x0, l.SourceY,
			xm, l.SourceY, xm, l.TargetY, x1, l.TargetY,
			x1, l.TargetY+l.Thickness,
			xm, l.TargetY+l.Thickness, xm, l.SourceY+l.Thickness, x0, l.SourceY+l.Thickness,
		), color[l.Source], 0.45)
	}

	for _, n := range layout.Nodes {
		doc.rect(n.X, n.Y, sankeyNodeWidth, n.Height, color[n.Name], 1)
	}

	return doc.String(), nil
}
