package view

import (
	"image"
	"sort"

	"github.com/BrandonKowalski/slidedeck/pkg/slidedeck/constants"
)

// Node is an in-memory Element.
type Node struct {
	text     string
	classes  map[string]bool
	disabled bool
	opacity  float64
	attrs    map[string]string
}

func newNode() *Node {
	return &Node{
		classes: make(map[string]bool),
		attrs:   make(map[string]string),
		opacity: constants.EnabledOpacity,
	}
}

func (n *Node) SetText(text string) { n.text = text }

func (n *Node) Text() string { return n.text }

func (n *Node) SetClass(class string, on bool) {
	if on {
		n.classes[class] = true
	} else {
		delete(n.classes, class)
	}
}

func (n *Node) HasClass(class string) bool { return n.classes[class] }

func (n *Node) SetDisabled(disabled bool) { n.disabled = disabled }

func (n *Node) Disabled() bool { return n.disabled }

func (n *Node) SetOpacity(opacity float64) { n.opacity = opacity }

// Opacity returns the last opacity set on the node.
func (n *Node) Opacity() float64 { return n.opacity }

func (n *Node) SetAttr(name, value string) { n.attrs[name] = value }

// Attr returns the value of an attribute, or an empty string.
func (n *Node) Attr(name string) string { return n.attrs[name] }

// Classes returns the node's classes in sorted order.
func (n *Node) Classes() []string {
	out := make([]string, 0, len(n.classes))
	for c := range n.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SlideNode is an in-memory Slide.
type SlideNode struct {
	*Node
	number int
}

func (s *SlideNode) Number() int { return s.number }

// MemorySurface is a Surface held entirely in memory. Hosts embed it to keep
// element state and draw from it; tests use it directly.
//
// MemorySurface is not safe for concurrent use.
type MemorySurface struct {
	elements   map[Role]*Node
	slides     []*SlideNode
	dots       []*Node
	visibility map[int]float64
	visuals    map[int]image.Image
}

// NewMemorySurface returns a surface with the given number of slides and
// every element role present.
func NewMemorySurface(slides int) *MemorySurface {
	m := &MemorySurface{
		elements:   make(map[Role]*Node, len(Roles)),
		visibility: make(map[int]float64),
		visuals:    make(map[int]image.Image),
	}
	for _, role := range Roles {
		m.elements[role] = newNode()
	}
	for i := 1; i <= slides; i++ {
		m.slides = append(m.slides, &SlideNode{Node: newNode(), number: i})
	}
	return m
}

// Without removes elements from the surface, simulating a host whose markup
// lacks them. Removing RoleDots removes the dot container.
func (m *MemorySurface) Without(roles ...Role) *MemorySurface {
	for _, role := range roles {
		delete(m.elements, role)
	}
	return m
}

func (m *MemorySurface) Element(role Role) Element {
	if role == RoleDots {
		return nil
	}
	n, ok := m.elements[role]
	if !ok {
		return nil
	}
	return n
}

func (m *MemorySurface) Slides() []Slide {
	out := make([]Slide, len(m.slides))
	for i, s := range m.slides {
		out[i] = s
	}
	return out
}

func (m *MemorySurface) ResetDots(n int) []Element {
	if _, ok := m.elements[RoleDots]; !ok {
		return nil
	}
	m.dots = make([]*Node, n)
	out := make([]Element, n)
	for i := range m.dots {
		m.dots[i] = newNode()
		out[i] = m.dots[i]
	}
	return out
}

// Node returns the node bound to role, or nil.
func (m *MemorySurface) Node(role Role) *Node {
	return m.elements[role]
}

// SlideNode returns slide n, or nil.
func (m *MemorySurface) SlideNode(n int) *SlideNode {
	if n < 1 || n > len(m.slides) {
		return nil
	}
	return m.slides[n-1]
}

// SlideCount returns the number of slide surfaces.
func (m *MemorySurface) SlideCount() int {
	return len(m.slides)
}

// Dots returns the current dot nodes.
func (m *MemorySurface) Dots() []*Node {
	return m.dots
}

// ActiveSlides returns the numbers of every slide marked active.
func (m *MemorySurface) ActiveSlides() []int {
	return m.withClass(constants.ClassActive)
}

// TransitioningSlides returns the numbers of every slide marked as
// transitioning out.
func (m *MemorySurface) TransitioningSlides() []int {
	return m.withClass(constants.ClassTransitioning)
}

// ActiveDots returns the zero-based indices of every active dot.
func (m *MemorySurface) ActiveDots() []int {
	var out []int
	for i, d := range m.dots {
		if d.HasClass(constants.ClassActive) {
			out = append(out, i)
		}
	}
	return out
}

// SetVisibility overrides the visible fraction reported for slide n.
func (m *MemorySurface) SetVisibility(n int, fraction float64) {
	m.visibility[n] = fraction
}

// VisibleFraction reports the fraction of slide n that is visible. Unless
// overridden, the active slide is fully visible and every other slide hidden.
func (m *MemorySurface) VisibleFraction(n int) float64 {
	if f, ok := m.visibility[n]; ok {
		return f
	}
	if s := m.SlideNode(n); s != nil && s.HasClass(constants.ClassActive) {
		return 1
	}
	return 0
}

// SetVisual stores a rendered visualization for slide n.
func (m *MemorySurface) SetVisual(n int, img image.Image) {
	m.visuals[n] = img
}

// Visual returns the visualization stored for slide n.
func (m *MemorySurface) Visual(n int) (image.Image, bool) {
	img, ok := m.visuals[n]
	return img, ok
}

func (m *MemorySurface) withClass(class string) []int {
	var out []int
	for _, s := range m.slides {
		if s.HasClass(class) {
			out = append(out, s.number)
		}
	}
	return out
}

var (
	_ Surface          = (*MemorySurface)(nil)
	_ VisibilityProber = (*MemorySurface)(nil)
	_ VisualSink       = (*MemorySurface)(nil)
	_ Slide            = (*SlideNode)(nil)
)
