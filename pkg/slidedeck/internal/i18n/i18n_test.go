package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestDefaultLabelsAreEnglish(t *testing.T) {
	l := Default()

	assert.Equal(t, language.English, l.Language())
	assert.Equal(t, "Next", l.Next())
	assert.Equal(t, "Previous", l.Previous())
	assert.Equal(t, "Complete", l.Complete())
	assert.Equal(t, "Go to slide 7", l.DotLabel(7))
	assert.Equal(t, "3 / 20", l.Counter(3, 20))
}

func TestLabelsMatchSupportedLanguage(t *testing.T) {
	fr := NewLabels("fr-CA")
	assert.Equal(t, "Suivant", fr.Next())
	assert.Equal(t, "Terminé", fr.Complete())
	assert.Equal(t, "Aller à la diapositive 2", fr.DotLabel(2))
	assert.Equal(t, "2 sur 20", fr.Counter(2, 20))

	de := NewLabels("de-DE,de;q=0.9,en;q=0.8")
	assert.Equal(t, "Fertig", de.Complete())
	assert.Equal(t, "4 von 20", de.Counter(4, 20))
}

func TestLabelsFallBackToEnglish(t *testing.T) {
	for _, lang := range []string{"ja", "not a language", ""} {
		l := NewLabels(lang)
		assert.Equal(t, "Complete", l.Complete(), "lang %q", lang)
	}
}
