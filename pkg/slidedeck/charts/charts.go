// Package charts provides the visualizations shown on chart slides.
//
// Each chart kind builds an SVG document from its dataset and rasterizes it
// into an image that is handed to a Sink, usually the host surface. Registry
// turns a deck's visualization bindings into a loader registry.
package charts

import (
	"fmt"
	"image"
	"log/slog"
	"sort"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/deck"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/loader"
)

// Default raster size of a chart.
const (
	DefaultWidth  = 640
	DefaultHeight = 360
)

// Sink receives rendered charts.
type Sink interface {
	SetVisual(slide int, img image.Image)
}

// Builder produces the SVG document of one chart kind.
type Builder func(width, height int) (string, error)

// Kinds maps each visualization kind to its builder.
var Kinds = map[string]Builder{
	"sankey": func(w, h int) (string, error) { return SankeySVG(EnergyFlow, w, h) },
	"investment": func(w, h int) (string, error) {
		return InvestmentSVG(InvestmentByCountry, w, h)
	},
	"workforce": func(w, h int) (string, error) { return WorkforceSVG(WorkforceProjections, w, h) },
	"reactors":  func(w, h int) (string, error) { return ReactorsSVG(ReactorSpecs, w, h) },
	"timeline":  func(w, h int) (string, error) { return TimelineSVG(TrainingTimeline, w, h) },
}

// KindNames returns every known kind in sorted order.
func KindNames() []string {
	names := make([]string, 0, len(Kinds))
	for k := range Kinds {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Options configures the charts built by Registry.
type Options struct {
	Width  int          // Raster width (default DefaultWidth)
	Height int          // Raster height (default DefaultHeight)
	Logger *slog.Logger // Receives warnings about unknown kinds (default: discard)
}

// Render builds and rasterizes a chart of the given kind.
func Render(kind string, width, height int) (*image.RGBA, error) {
	build, ok := Kinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown chart kind %q", kind)
	}
	svg, err := build(width, height)
	if err != nil {
		return nil, err
	}
	return Rasterize(svg, width, height)
}

// Registry builds a loader registry from the deck's visualization bindings.
// Each visualization renders its chart and delivers it to sink. Bindings of
// an unknown kind are skipped with a warning.
func Registry(d *deck.Deck, sink Sink, options Options) loader.Registry {
	if options.Width <= 0 {
		options.Width = DefaultWidth
	}
	if options.Height <= 0 {
		options.Height = DefaultHeight
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	reg := loader.Registry{}
	for _, b := range d.Bindings {
		if _, ok := Kinds[b.Kind]; !ok {
			options.Logger.Warn("Unknown visualization kind",
				"visualization", b.Name,
				"slide", b.Slide,
				"kind", b.Kind,
				"known", KindNames())
			continue
		}

		b := b
		reg[b.Slide] = loader.Visualization{
			Name: b.Name,
			Render: func() error {
				img, err := Render(b.Kind, options.Width, options.Height)
				if err != nil {
					return err
				}
				if sink != nil {
					sink.SetVisual(b.Slide, img)
				}
				return nil
			},
		}
	}
	return reg
}
