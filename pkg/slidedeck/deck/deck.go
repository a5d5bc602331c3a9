// Package deck loads presentation definitions and answers section lookups.
//
// A deck is a TOML document naming the slide count, the section ranges that
// make up the slide registry, optional per-slide titles and the slides that
// carry a lazily loaded visualization. The built-in deck is embedded and is
// returned by Default.
package deck

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
)

//go:embed default_deck.toml
var defaultDeck []byte

// ErrInvalidDeck is wrapped by every validation failure returned from Parse and Load.
var ErrInvalidDeck = errors.New("invalid deck")

// Section names a contiguous, inclusive range of slides.
type Section struct {
	Name  string `toml:"name"`
	First int    `toml:"first"`
	Last  int    `toml:"last"`
}

// Slide carries optional presentation content for one slide.
type Slide struct {
	Number int    `toml:"number"`
	Title  string `toml:"title"`
	Notes  string `toml:"notes"`
}

// Binding ties a visualization kind to the slide that displays it.
type Binding struct {
	Slide int    `toml:"slide"`
	Name  string `toml:"name"` // Human-readable name used in logs
	Kind  string `toml:"kind"` // Renderer selector, e.g. "sankey"
}

// Deck is a validated presentation definition. It is read-only after Parse.
type Deck struct {
	Title          string    `toml:"title"`
	Slides         int       `toml:"slides"`
	DefaultSection string    `toml:"default_section"`
	Sections       []Section `toml:"section"`
	Content        []Slide   `toml:"slide"`
	Bindings       []Binding `toml:"visualization"`

	registry map[int]string
	content  map[int]Slide
}

// Default returns the embedded 20-slide deck.
func Default() *Deck {
	d, err := Parse(defaultDeck)
	if err != nil {
		panic(fmt.Sprintf("deck: embedded deck is invalid: %v", err))
	}
	return d
}

// Parse decodes and validates a TOML deck definition.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeck, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidDeck, strings.Join(keys, ", "))
	}

	if err := d.build(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Load reads and parses the deck file at path.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load deck %s: %w", path, err)
	}
	return d, nil
}

func (d *Deck) build() error {
	if d.Slides < 1 {
		return fmt.Errorf("%w: slide count must be positive, got %d", ErrInvalidDeck, d.Slides)
	}
	if d.DefaultSection == "" {
		d.DefaultSection = constants.DefaultSectionLabel
	}

	ranges := append([]Section(nil), d.Sections...)
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].First < ranges[j].First })

	d.registry = make(map[int]string, d.Slides)
	for i, s := range ranges {
		if s.Name == "" {
			return fmt.Errorf("%w: section starting at %d has no name", ErrInvalidDeck, s.First)
		}
		if s.First < 1 || s.Last > d.Slides || s.First > s.Last {
			return fmt.Errorf("%w: section %q range [%d, %d] outside [1, %d]", ErrInvalidDeck, s.Name, s.First, s.Last, d.Slides)
		}
		if i > 0 && ranges[i-1].Last >= s.First {
			return fmt.Errorf("%w: section %q overlaps %q", ErrInvalidDeck, s.Name, ranges[i-1].Name)
		}
		for n := s.First; n <= s.Last; n++ {
			d.registry[n] = s.Name
		}
	}

	d.content = make(map[int]Slide, len(d.Content))
	for _, s := range d.Content {
		if !d.Contains(s.Number) {
			return fmt.Errorf("%w: slide %d outside [1, %d]", ErrInvalidDeck, s.Number, d.Slides)
		}
		d.content[s.Number] = s
	}

	seen := make(map[int]bool, len(d.Bindings))
	for _, b := range d.Bindings {
		if !d.Contains(b.Slide) {
			return fmt.Errorf("%w: visualization %q on slide %d outside [1, %d]", ErrInvalidDeck, b.Name, b.Slide, d.Slides)
		}
		if seen[b.Slide] {
			return fmt.Errorf("%w: slide %d has more than one visualization", ErrInvalidDeck, b.Slide)
		}
		if b.Kind == "" {
			return fmt.Errorf("%w: visualization on slide %d has no kind", ErrInvalidDeck, b.Slide)
		}
		seen[b.Slide] = true
	}

	return nil
}

// Total returns the number of slides, N.
func (d *Deck) Total() int {
	return d.Slides
}

// Contains reports whether n is a valid slide identifier.
func (d *Deck) Contains(n int) bool {
	return n >= 1 && n <= d.Slides
}

// Section returns the section label for slide n, falling back to the
// default label when the registry has no mapping.
func (d *Deck) Section(n int) string {
	if name, ok := d.registry[n]; ok {
		return name
	}
	return d.DefaultSection
}

// Slide returns the content recorded for slide n.
func (d *Deck) Slide(n int) (Slide, bool) {
	s, ok := d.content[n]
	return s, ok
}

// SlideTitle returns the title of slide n, or an empty string.
func (d *Deck) SlideTitle(n int) string {
	return d.content[n].Title
}

// Binding returns the visualization bound to slide n.
func (d *Deck) Binding(n int) (Binding, bool) {
	for _, b := range d.Bindings {
		if b.Slide == n {
			return b, true
		}
	}
	return Binding{}, false
}
