// Package slidedeck provides a linear slide-deck presentation controller.
//
// A Presenter owns the current position of one presentation, validates every
// transition, keeps the host's display surfaces (slides, counters, section
// name, navigation dots and controls) consistent with that position, and
// lazily initializes the visualizations tied to particular slides.
//
// All work runs on a single event loop: hosts call Presenter methods from
// the goroutine that drives the loop's Scheduler, never concurrently.
package slidedeck

import (
	"log/slog"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/deck"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/internal/i18n"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/loader"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/nav"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/schedule"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/state"
	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/view"
)

// ControlLabels supplies every label a presenter draws.
type ControlLabels interface {
	view.Labels
	Previous() string
	Counter(current, total int) string
}

// Options configures a Presenter.
type Options struct {
	Deck           *deck.Deck          // Slide registry (default: the built-in deck)
	Surface        view.Surface        // Host display surfaces (default: an in-memory surface)
	Scheduler      *schedule.Scheduler // Deferred task queue (default: a new scheduler)
	Visualizations loader.Registry     // Slide → visualization bindings
	LoadPolicy     loader.Policy       // Navigation-path load policy
	Language       string              // Preferred label language, e.g. "fr" (default English)
	Labels         ControlLabels       // Overrides Language when set
	Logger         *slog.Logger        // Application logger (default: discard)
}

// Snapshot is a read-only view of a presenter's state.
type Snapshot struct {
	Current          int    `json:"current"`
	Total            int    `json:"total"`
	Section          string `json:"section"`
	Title            string `json:"title,omitempty"`
	PreviousDisabled bool   `json:"previous_disabled"`
	NextDisabled     bool   `json:"next_disabled"`
	NextLabel        string `json:"next_label"`
}

// Presenter is the controller of one presentation.
type Presenter struct {
	deck       *deck.Deck
	surface    view.Surface
	position   *state.Position
	sched      *schedule.Scheduler
	sync       *view.Synchronizer
	loader     *loader.Loader
	dispatcher *nav.Dispatcher
	labels     ControlLabels
	logger     *slog.Logger

	initialized bool
	observers   []func(Snapshot)
}

// New creates a presenter positioned on slide 1. Nothing is rendered until Init.
func New(options Options) *Presenter {
	if options.Deck == nil {
		options.Deck = deck.Default()
	}
	if options.Surface == nil {
		options.Surface = view.NewMemorySurface(options.Deck.Total())
	}
	if options.Scheduler == nil {
		options.Scheduler = schedule.New()
	}
	if options.Labels == nil {
		options.Labels = i18n.NewLabels(options.Language)
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	p := &Presenter{
		deck:     options.Deck,
		surface:  options.Surface,
		position: state.NewPosition(options.Deck.Total()),
		sched:    options.Scheduler,
		labels:   options.Labels,
		logger:   options.Logger,
	}

	p.sync = view.NewSynchronizer(p.surface, p.deck, p.position, p.sched, p.labels)
	p.loader = loader.New(options.Visualizations, loader.Options{
		Policy: options.LoadPolicy,
		Logger: p.logger,
	})
	p.dispatcher = nav.NewDispatcher(navigator{p})

	return p
}

// Init performs one-time setup once the host's surfaces exist: it binds
// elements, creates the navigation dots, renders slide 1, primes slide
// animations and schedules the start of visibility observation. Calls after
// the first have no effect.
func (p *Presenter) Init() {
	if p.initialized {
		return
	}
	p.initialized = true

	p.sync.Bind()
	p.sync.Show()
	p.sync.PrimeAnimations()

	p.sched.After(constants.LoaderStartDelay, "start-loader", p.startLoader)

	p.logger.Info("Presentation initialized",
		"title", p.deck.Title,
		"slides", p.position.Total(),
		"visualizations", len(p.loader.Observed()))
}

// Initialized reports whether Init has run.
func (p *Presenter) Initialized() bool {
	return p.initialized
}

// GoToSlide moves to slide n. Out-of-range targets and the current slide are ignored.
func (p *Presenter) GoToSlide(n int) bool {
	return p.dispatcher.GoToSlide(n)
}

// Next advances one slide unless the last slide is current.
func (p *Presenter) Next() bool {
	return p.dispatcher.Next()
}

// Previous goes back one slide unless the first slide is current.
func (p *Presenter) Previous() bool {
	return p.dispatcher.Previous()
}

// CurrentSlide returns the current slide identifier.
func (p *Presenter) CurrentSlide() int {
	return p.position.Current()
}

// TotalSlides returns the number of slides.
func (p *Presenter) TotalSlides() int {
	return p.position.Total()
}

// Dispatcher returns the input dispatcher hosts feed keys, gestures, dots
// and buttons into.
func (p *Presenter) Dispatcher() *nav.Dispatcher {
	return p.dispatcher
}

// Deck returns the presentation's deck.
func (p *Presenter) Deck() *deck.Deck {
	return p.deck
}

// Scheduler returns the deferred task queue hosts must advance.
func (p *Presenter) Scheduler() *schedule.Scheduler {
	return p.sched
}

// Loader returns the lazy content loader.
func (p *Presenter) Loader() *loader.Loader {
	return p.loader
}

// Labels returns the labels drawn on controls.
func (p *Presenter) Labels() ControlLabels {
	return p.labels
}

// NotifyVisibility forwards a host visibility notification for slide.
func (p *Presenter) NotifyVisibility(slide int, fraction float64) {
	p.loader.OnVisibility(slide, fraction)
}

// OnChange registers fn to be called after every committed transition.
func (p *Presenter) OnChange(fn func(Snapshot)) {
	p.observers = append(p.observers, fn)
}

// Snapshot returns the presenter's current state.
func (p *Presenter) Snapshot() Snapshot {
	current := p.position.Current()
	nextLabel := p.labels.Next()
	if p.position.IsLast() {
		nextLabel = p.labels.Complete()
	}
	return Snapshot{
		Current:          current,
		Total:            p.position.Total(),
		Section:          p.deck.Section(current),
		Title:            p.deck.SlideTitle(current),
		PreviousDisabled: p.position.IsFirst(),
		NextDisabled:     p.position.IsLast(),
		NextLabel:        nextLabel,
	}
}

// commit is the only path that mutates the position.
func (p *Presenter) commit(target int) bool {
	previous, changed := p.position.GoTo(target)
	if !changed {
		return false
	}
	current := p.position.Current()

	p.sync.Transition()
	p.loader.OnActivate(current)
	p.probeVisibility()

	p.logger.Debug("Slide changed", "from", previous, "to", current, "section", p.deck.Section(current))

	if len(p.observers) > 0 {
		snap := p.Snapshot()
		for _, fn := range p.observers {
			fn(snap)
		}
	}
	return true
}

func (p *Presenter) startLoader() {
	p.loader.Start()
	p.logger.Debug("Visibility observation started", "slides", p.loader.Observed())
	p.probeVisibility()
}

// probeVisibility reports the visibility of every observed slide when the
// host can measure it, as an intersection observer would.
func (p *Presenter) probeVisibility() {
	if !p.loader.Observing() {
		return
	}
	prober, ok := p.surface.(view.VisibilityProber)
	if !ok {
		return
	}
	for _, slide := range p.loader.Observed() {
		p.loader.OnVisibility(slide, prober.VisibleFraction(slide))
	}
}

// navigator adapts a Presenter to nav.Navigator without exposing commit.
type navigator struct {
	p *Presenter
}

func (n navigator) Current() int         { return n.p.position.Current() }
func (n navigator) Total() int           { return n.p.position.Total() }
func (n navigator) GoTo(target int) bool { return n.p.commit(target) }
