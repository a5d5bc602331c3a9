package charts

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/deck"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/loader"
)

type memorySink map[int]image.Image

func (m memorySink) SetVisual(slide int, img image.Image) { m[slide] = img }

func TestLayoutSankeyColumns(t *testing.T) {
	layout, err := LayoutSankey(EnergyFlow, DefaultWidth, DefaultHeight)
	require.NoError(t, err)

	columns := map[string]int{
		"Coal":           0,
		"Oil & Gas":      0,
		"Nuclear":        0,
		"Renewables":     0,
		"Electricity":    1,
		"Transportation": 1,
		"Industry":       2,
		"Residential":    2,
		"Commercial":     2,
	}
	require.Len(t, layout.Nodes, len(columns))
	for name, want := range columns {
		n, ok := layout.Node(name)
		require.True(t, ok, name)
		assert.Equal(t, want, n.Column, name)
	}

	electricity, _ := layout.Node("Electricity")
	assert.Equal(t, 890.0, electricity.Value)
	assert.Len(t, layout.Links, len(EnergyFlow))
}

func TestLayoutSankeyFitsArea(t *testing.T) {
	layout, err := LayoutSankey(EnergyFlow, DefaultWidth, DefaultHeight)
	require.NoError(t, err)

	for _, n := range layout.Nodes {
		assert.GreaterOrEqual(t, n.Y, chartMargin, n.Name)
		assert.LessOrEqual(t, n.Y+n.Height, DefaultHeight-chartMargin+0.001, n.Name)
		assert.LessOrEqual(t, n.X+sankeyNodeWidth, DefaultWidth-chartMargin+0.001, n.Name)
	}

	for _, l := range layout.Links {
		src, _ := layout.Node(l.Source)
		dst, _ := layout.Node(l.Target)
		assert.LessOrEqual(t, l.SourceY+l.Thickness, src.Y+src.Height+0.001)
		assert.LessOrEqual(t, l.TargetY+l.Thickness, dst.Y+dst.Height+0.001)
	}
}

func TestLayoutSankeyRejectsBadFlows(t *testing.T) {
	_, err := LayoutSankey(nil, 100, 100)
	assert.Error(t, err)

	_, err = LayoutSankey([]Flow{{Source: "A", Target: "B", Value: 0}}, 100, 100)
	assert.Error(t, err)

	_, err = LayoutSankey([]Flow{
		{Source: "A", Target: "B", Value: 1},
		{Source: "B", Target: "A", Value: 1},
	}, 100, 100)
	assert.ErrorContains(t, err, "cycle")
}

func TestBuildersProduceSVG(t *testing.T) {
	for _, kind := range KindNames() {
		t.Run(kind, func(t *testing.T) {
			svg, err := Kinds[kind](DefaultWidth, DefaultHeight)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(svg, "<svg"))
			assert.True(t, strings.HasSuffix(svg, "</svg>"))
		})
	}
}

func TestBuildersRejectEmptyData(t *testing.T) {
	_, err := InvestmentSVG(nil, 100, 100)
	assert.Error(t, err)
	_, err = WorkforceSVG(WorkforceProjections[:1], 100, 100)
	assert.Error(t, err)
	_, err = ReactorsSVG(nil, 100, 100)
	assert.Error(t, err)
	_, err = TimelineSVG([]TrainingPhase{{Phase: "Backwards", FirstMonth: 5, LastMonth: 2}}, 100, 100)
	assert.Error(t, err)
}

func TestRenderDrawsChart(t *testing.T) {
	img, err := Render("sankey", DefaultWidth, DefaultHeight)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, DefaultWidth, DefaultHeight), img.Bounds())

	bg := img.RGBAAt(DefaultWidth/2, 2)
	assert.InDelta(t, 0xFC, int(bg.R), 1)
	assert.InDelta(t, 0xF9, int(bg.B), 1)

	// Inside the first source node.
	node := img.RGBAAt(30, 40)
	assert.NotEqual(t, bg, node)
	assert.Less(t, node.R, uint8(0x40))
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := Render("pie", 10, 10)
	assert.ErrorContains(t, err, "pie")
}

func TestRasterizeRejectsInvalidSize(t *testing.T) {
	_, err := Rasterize(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`, 0, 10)
	assert.Error(t, err)
}

func TestRegistryFromDefaultDeck(t *testing.T) {
	sink := memorySink{}
	reg := Registry(deck.Default(), sink, Options{Width: 320, Height: 180})

	assert.Equal(t, []int{2, 5, 12}, reg.Slides())
	assert.Equal(t, "Investment", reg[5].Name)

	require.NoError(t, reg[5].Render())
	require.Contains(t, sink, 5)
	assert.Equal(t, image.Rect(0, 0, 320, 180), sink[5].Bounds())
	assert.NotContains(t, sink, 2)
}

func TestRegistrySkipsUnknownKinds(t *testing.T) {
	d, err := deck.Parse([]byte(`
slides = 3

[[visualization]]
slide = 2
name = "Pie"
kind = "pie"

[[visualization]]
slide = 3
name = "Plan"
kind = "timeline"
`))
	require.NoError(t, err)

	var logs bytes.Buffer
	reg := Registry(d, nil, Options{Logger: slog.New(slog.NewTextHandler(&logs, nil))})

	assert.Equal(t, []int{3}, reg.Slides())
	assert.Contains(t, logs.String(), "Unknown visualization kind")
	assert.Contains(t, logs.String(), "kind=pie")
	assert.NoError(t, reg[3].Render())
}

func TestRegistryDrivesLoader(t *testing.T) {
	sink := memorySink{}
	l := loader.New(Registry(deck.Default(), sink, Options{Width: 160, Height: 90}), loader.Options{})
	l.Start()

	assert.True(t, l.OnVisibility(12, 0.5))
	assert.True(t, l.OnActivate(2))

	assert.Contains(t, sink, 12)
	assert.Contains(t, sink, 2)
	assert.Empty(t, l.Failures())
}

func TestRenderErrorBecomesVisualizationError(t *testing.T) {
	d, err := deck.Parse([]byte(`
slides = 2
[[visualization]]
slide = 2
name = "Workforce"
kind = "workforce"
`))
	require.NoError(t, err)

	saved := Kinds["workforce"]
	Kinds["workforce"] = func(int, int) (string, error) { return "", errors.New("no data") }
	t.Cleanup(func() { Kinds["workforce"] = saved })

	l := loader.New(Registry(d, memorySink{}, Options{}), loader.Options{})
	l.OnActivate(2)

	require.Len(t, l.Failures(), 1)
	var visErr *loader.VisualizationError
	require.ErrorAs(t, l.Failures()[0], &visErr)
	assert.Equal(t, "Workforce", visErr.Name)
}
