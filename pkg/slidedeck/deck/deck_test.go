package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDeckRegistry(t *testing.T) {
	d := Default()

	assert.Equal(t, 20, d.Total())

	cases := map[int]string{
		1:  "Introduction",
		2:  "Motivation",
		4:  "Motivation",
		6:  "Motivation",
		7:  "India's Program",
		8:  "India's Program",
		12: "Challenges",
		13: "Your Role",
		17: "Outcomes",
		18: "Timeline",
		20: "Timeline",
	}
	for n, want := range cases {
		assert.Equal(t, want, d.Section(n), "slide %d", n)
	}
}

func TestSectionFallsBackToDefault(t *testing.T) {
	d := Default()

	assert.Equal(t, "Introduction", d.Section(0))
	assert.Equal(t, "Introduction", d.Section(21))
}

func TestDefaultDeckBindings(t *testing.T) {
	d := Default()

	b, ok := d.Binding(5)
	require.True(t, ok)
	assert.Equal(t, "Investment", b.Name)
	assert.Equal(t, "investment", b.Kind)

	_, ok = d.Binding(3)
	assert.False(t, ok)
	assert.Len(t, d.Bindings, 3)
}

func TestParseFillsDefaultSection(t *testing.T) {
	d, err := Parse([]byte(`
slides = 3

[[section]]
name = "Body"
first = 2
last = 3
`))
	require.NoError(t, err)

	assert.Equal(t, "Introduction", d.Section(1))
	assert.Equal(t, "Body", d.Section(3))
	assert.Equal(t, "", d.SlideTitle(2))
}

func TestParseRejectsInvalidDecks(t *testing.T) {
	cases := map[string]string{
		"no slides": `title = "empty"`,
		"range past end": `
slides = 2
[[section]]
name = "A"
first = 1
last = 3
`,
		"overlap": `
slides = 4
[[section]]
name = "A"
first = 1
last = 2
[[section]]
name = "B"
first = 2
last = 4
`,
		"duplicate visualization": `
slides = 4
[[visualization]]
slide = 2
name = "One"
kind = "sankey"
[[visualization]]
slide = 2
name = "Two"
kind = "investment"
`,
		"unknown key": `
slides = 4
colour = "blue"
`,
		"bad syntax": `slides = `,
	}

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			assert.ErrorIs(t, err, ErrInvalidDeck)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "Short"
slides = 2

[[slide]]
number = 2
title = "End"
`), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Short", d.Title)
	assert.Equal(t, "End", d.SlideTitle(2))

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
