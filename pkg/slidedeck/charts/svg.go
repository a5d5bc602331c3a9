package charts

import (
	"fmt"
	"strings"
)

// Palette used by every chart.
var palette = []string{"#1FB8CD", "#FFC185", "#B4413C", "#5D878F", "#DB4545", "#D2BA4C", "#964325", "#944454"}

const (
	axisColor   = "#626C71"
	background  = "#FCFCF9"
	chartMargin = 24.0
)

// svgDoc accumulates the elements of one SVG document.
type svgDoc struct {
	width, height float64
	b             strings.Builder
}

func newDoc(width, height int) *svgDoc {
	d := &svgDoc{width: float64(width), height: float64(height)}
	fmt.Fprintf(&d.b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
	d.rect(0, 0, d.width, d.height, background, 1)
	return d
}

func (d *svgDoc) rect(x, y, w, h float64, fill string, opacity float64) {
	fmt.Fprintf(&d.b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.2f"/>`,
		x, y, w, h, fill, opacity)
}

func (d *svgDoc) line(x1, y1, x2, y2 float64, stroke string, width float64) {
	fmt.Fprintf(&d.b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`,
		x1, y1, x2, y2, stroke, width)
}

func (d *svgDoc) path(data, fill string, opacity float64) {
	fmt.Fprintf(&d.b, `<path d="%s" fill="%s" fill-opacity="%.2f"/>`, data, fill, opacity)
}

func (d *svgDoc) polyline(points [][2]float64, stroke string, width float64, dashed bool) {
	pts := make([]string, len(points))
	for i, p := range points {
		pts[i] = fmt.Sprintf("%.2f,%.2f", p[0], p[1])
	}
	dash := ""
	if dashed {
		dash = ` stroke-dasharray="8,4"`
	}
	fmt.Fprintf(&d.b, `<polyline points="%s" fill="none" stroke="%s" stroke-width="%.2f"%s/>`,
		strings.Join(pts, " "), stroke, width, dash)
}

func (d *svgDoc) circle(cx, cy, r float64, fill string) {
	fmt.Fprintf(&d.b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`, cx, cy, r, fill)
}

// axes draws the left and bottom axes of the plot area.
func (d *svgDoc) axes() {
	d.line(chartMargin, chartMargin, chartMargin, d.height-chartMargin, axisColor, 1.5)
	d.line(chartMargin, d.height-chartMargin, d.width-chartMargin, d.height-chartMargin, axisColor, 1.5)
}

func (d *svgDoc) String() string {
	return d.b.String() + "</svg>"
}
