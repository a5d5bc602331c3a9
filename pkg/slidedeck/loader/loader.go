// Package loader initializes slide visualizations lazily.
//
// Two triggers compose. The visibility path fires when an observed slide
// becomes at least partly visible and is guarded by a per-slide load flag, so
// repeated visibility notifications render at most once. The navigation path
// fires whenever a slide with a visualization becomes current. Under the
// default policy the navigation path ignores the load flag and renders every
// time; PolicyGuardBoth makes it honor the flag too.
package loader

import (
	"log/slog"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
)

// Policy selects how the navigation path treats load flags.
type Policy int

const (
	// PolicyNavigationAlways renders on every navigation to a slide,
	// regardless of load flags, and leaves the flags untouched.
	PolicyNavigationAlways Policy = iota
	// PolicyGuardBoth renders at most once per slide across both paths.
	PolicyGuardBoth
)

// Options configures a Loader.
type Options struct {
	Policy    Policy       // Navigation-path policy (default PolicyNavigationAlways)
	Threshold float64      // Minimum visible fraction (default constants.VisibilityThreshold)
	Logger    *slog.Logger // Receives failure warnings (default: discard)
}

// Invocations counts the renders attempted for one slide, per trigger.
type Invocations struct {
	Visibility int
	Navigation int
}

type flagKey struct {
	slide int
	name  string
}

// Loader triggers visualizations for designated slides.
//
// Loader is owned by the presentation's event loop and is not safe for
// concurrent use.
type Loader struct {
	registry  Registry
	policy    Policy
	threshold float64
	logger    *slog.Logger

	observing bool
	flags     map[flagKey]bool
	counts    map[int]Invocations
	failures  []error
}

// New returns a loader for registry. Observation does not begin until Start.
func New(registry Registry, options Options) *Loader {
	if options.Threshold <= 0 {
		options.Threshold = constants.VisibilityThreshold
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	if registry == nil {
		registry = Registry{}
	}
	return &Loader{
		registry:  registry,
		policy:    options.Policy,
		threshold: options.Threshold,
		logger:    options.Logger,
		flags:     make(map[flagKey]bool),
		counts:    make(map[int]Invocations),
	}
}

// Start begins observing visibility of the designated slides. Calls after
// the first have no effect.
func (l *Loader) Start() {
	l.observing = true
}

// Observing reports whether visibility notifications are being handled.
func (l *Loader) Observing() bool {
	return l.observing
}

// Observed returns the slides whose visibility is watched.
func (l *Loader) Observed() []int {
	return l.registry.Slides()
}

// OnVisibility handles a visibility notification for slide. It renders the
// slide's visualization when the slide is observed, the visible fraction
// reaches the threshold and the load flag is unset, then sets the flag.
// It reports whether a render was attempted.
func (l *Loader) OnVisibility(slide int, fraction float64) bool {
	if !l.observing || fraction < l.threshold {
		return false
	}
	vis, ok := l.registry[slide]
	if !ok {
		return false
	}

	key := flagKey{slide: slide, name: vis.Name}
	if l.flags[key] {
		return false
	}

	l.invoke(slide, vis)
	l.flags[key] = true

	c := l.counts[slide]
	c.Visibility++
	l.counts[slide] = c
	return true
}

// OnActivate handles a navigation that made slide current. It reports
// whether a render was attempted.
func (l *Loader) OnActivate(slide int) bool {
	vis, ok := l.registry[slide]
	if !ok {
		return false
	}

	if l.policy == PolicyGuardBoth {
		key := flagKey{slide: slide, name: vis.Name}
		if l.flags[key] {
			return false
		}
		l.flags[key] = true
	}

	l.invoke(slide, vis)

	c := l.counts[slide]
	c.Navigation++
	l.counts[slide] = c
	return true
}

// Loaded reports whether the load flag for slide's visualization is set.
func (l *Loader) Loaded(slide int) bool {
	vis, ok := l.registry[slide]
	if !ok {
		return false
	}
	return l.flags[flagKey{slide: slide, name: vis.Name}]
}

// Invocations returns how many renders each trigger attempted for slide.
func (l *Loader) Invocations(slide int) Invocations {
	return l.counts[slide]
}

// Failures returns every visualization failure recorded so far.
func (l *Loader) Failures() []error {
	return append([]error(nil), l.failures...)
}

func (l *Loader) invoke(slide int, vis Visualization) {
	if err := safeRender(vis); err != nil {
		visErr := &VisualizationError{Name: vis.Name, Slide: slide, Err: err}
		l.failures = append(l.failures, visErr)
		l.logger.Warn("Failed to create "+vis.Name+" chart",
			"visualization", vis.Name,
			"slide", slide,
			"error", err)
	}
}

func safeRender(vis Visualization) (err error) {
	if vis.Render == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return vis.Render()
}
