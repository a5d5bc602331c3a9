// Package i18n provides the localized labels drawn on navigation controls.
package i18n

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	matcher    language.Matcher
)

func loadBundle() {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		files, _ := fs.Glob(localeFS, "locales/*.toml")
		for _, f := range files {
			if _, err := bundle.LoadMessageFileFS(localeFS, f); err != nil {
				panic("i18n: embedded locale " + f + ": " + err.Error())
			}
		}

		matcher = language.NewMatcher(bundle.LanguageTags())
	})
}

// Labels resolves control labels for one preferred language list.
type Labels struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewLabels returns labels for the first supported language among langs,
// which may be BCP 47 tags or Accept-Language values. English is the fallback.
func NewLabels(langs ...string) *Labels {
	loadBundle()

	var tags []language.Tag
	for _, l := range langs {
		parsed, _, err := language.ParseAcceptLanguage(l)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}

	tag := language.English
	if len(tags) > 0 {
		_, index, confidence := matcher.Match(tags...)
		if confidence != language.No {
			tag = bundle.LanguageTags()[index]
		}
	}

	return &Labels{
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
	}
}

// Default returns English labels.
func Default() *Labels {
	return NewLabels()
}

// Language returns the language the labels are rendered in.
func (l *Labels) Language() language.Tag {
	return l.tag
}

// Next returns the label of the enabled next control.
func (l *Labels) Next() string {
	return l.localize("Next", "Next", nil)
}

// Previous returns the label of the previous control.
func (l *Labels) Previous() string {
	return l.localize("Previous", "Previous", nil)
}

// Complete returns the label of the next control on the last slide.
func (l *Labels) Complete() string {
	return l.localize("Complete", "Complete", nil)
}

// DotLabel returns the accessible label of the dot for slide n.
func (l *Labels) DotLabel(n int) string {
	return l.localize("GoToSlide", "Go to slide {{.Number}}", map[string]any{"Number": n})
}

// Counter returns a "current / total" readout.
func (l *Labels) Counter(current, total int) string {
	return l.localize("SlideCounter", "{{.Current}} / {{.Total}}", map[string]any{"Current": current, "Total": total})
}

func (l *Labels) localize(id, fallback string, data map[string]any) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
		TemplateData:   data,
	})
	if err != nil {
		return fallback
	}
	return msg
}
