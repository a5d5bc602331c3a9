package charts

import "fmt"

const barGap = 0.25 // Fraction of each group's slot left empty

// InvestmentSVG renders investment and project count per country as grouped
// bars. Each series is scaled to its own maximum.
func InvestmentSVG(data []Investment, width, height int) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("investment: no data")
	}

	maxBillions, maxProjects := 0.0, 0
	for _, d := range data {
		maxBillions = max(maxBillions, d.Billions)
		maxProjects = max(maxProjects, d.Projects)
	}
	if maxBillions <= 0 || maxProjects <= 0 {
		return "", fmt.Errorf("investment: series must contain a positive value")
	}

	doc := newDoc(width, height)
	doc.axes()

	plotW := float64(width) - 2*chartMargin
	plotH := float64(height) - 2*chartMargin
	baseline := float64(height) - chartMargin

	slot := plotW / float64(len(data))
	bar := slot * (1 - barGap) / 2
	for i, d := range data {
		x := chartMargin + float64(i)*slot + slot*barGap/2

		h := d.Billions / maxBillions * plotH
		doc.rect(x, baseline-h, bar, h, palette[0], 1)

		h = float64(d.Projects) / float64(maxProjects) * plotH
		doc.rect(x+bar, baseline-h, bar, h, palette[1], 1)
	}

	return doc.String(), nil
}

// ReactorsSVG renders reactor capacities as horizontal bars.
func ReactorsSVG(data []ReactorSpec, width, height int) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("reactors: no data")
	}

	maxCapacity := 0.0
	for _, d := range data {
		maxCapacity = max(maxCapacity, d.CapacityMWe)
	}
	if maxCapacity <= 0 {
		return "", fmt.Errorf("reactors: capacities must contain a positive value")
	}

	doc := newDoc(width, height)
	doc.axes()

	plotW := float64(width) - 2*chartMargin
	plotH := float64(height) - 2*chartMargin

	slot := plotH / float64(len(data))
	for i, d := range data {
		y := chartMargin + float64(i)*slot + slot*barGap/2
		doc.rect(chartMargin, y, d.CapacityMWe/maxCapacity*plotW, slot*(1-barGap), palette[(i+2)%len(palette)], 1)
	}

	return doc.String(), nil
}

// TimelineSVG renders training phases as a Gantt chart over months.
func TimelineSVG(data []TrainingPhase, width, height int) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("timeline: no phases")
	}

	first, last := data[0].FirstMonth, data[0].LastMonth
	for _, p := range data {
		if p.LastMonth < p.FirstMonth {
			return "", fmt.Errorf("timeline: phase %q ends before it starts", p.Phase)
		}
		first = min(first, p.FirstMonth)
		last = max(last, p.LastMonth)
	}

	doc := newDoc(width, height)
	doc.axes()

	plotW := float64(width) - 2*chartMargin
	plotH := float64(height) - 2*chartMargin
	months := float64(last - first + 1)

	slot := plotH / float64(len(data))
	for i, p := range data {
		x := chartMargin + float64(p.FirstMonth-first)/months*plotW
		w := float64(p.LastMonth-p.FirstMonth+1) / months * plotW
		y := chartMargin + float64(i)*slot + slot*barGap/2
		doc.rect(x, y, w, slot*(1-barGap), palette[i%len(palette)], 1)
	}

	return doc.String(), nil
}
