package charts

import "fmt"

// WorkforceSVG renders the current workforce trajectory as a solid line and
// the required workforce as a dashed line, on a shared scale.
func WorkforceSVG(data []WorkforceYear, width, height int) (string, error) {
	if len(data) < 2 {
		return "", fmt.Errorf("workforce: need at least two years, got %d", len(data))
	}

	firstYear, lastYear := data[0].Year, data[len(data)-1].Year
	if lastYear <= firstYear {
		return "", fmt.Errorf("workforce: years must increase")
	}
	peak := 0
	for _, d := range data {
		peak = max(peak, d.Current, d.Required)
	}
	if peak <= 0 {
		return "", fmt.Errorf("workforce: no positive values")
	}

	doc := newDoc(width, height)
	doc.axes()

	plotW := float64(width) - 2*chartMargin
	plotH := float64(height) - 2*chartMargin
	baseline := float64(height) - chartMargin

	point := func(year, value int) [2]float64 {
		x := chartMargin + float64(year-firstYear)/float64(lastYear-firstYear)*plotW
		y := baseline - float64(value)/float64(peak)*plotH
		return [2]float64{x, y}
	}

	current := make([][2]float64, len(data))
	required := make([][2]float64, len(data))
	for i, d := range data {
		current[i] = point(d.Year, d.Current)
		required[i] = point(d.Year, d.Required)
	}

	doc.polyline(required, palette[2], 3, true)
	doc.polyline(current, palette[0], 3, false)
	for i := range data {
		doc.circle(required[i][0], required[i][1], 4, palette[2])
		doc.circle(current[i][0], current[i][1], 4, palette[0])
	}

	return doc.String(), nil
}
