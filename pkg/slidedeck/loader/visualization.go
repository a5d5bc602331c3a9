package loader

import (
	"errors"
	"fmt"
	"sort"
)

// Visualization is an expensive piece of slide content, such as a chart,
// initialized on demand. Render may fail by returning an error or panicking;
// either way the failure stays inside the Loader.
type Visualization struct {
	Name   string // Human-readable name used in warnings
	Render func() error
}

// Registry maps a slide identifier to the visualization it displays.
type Registry map[int]Visualization

// Slides returns the registered slides in ascending order.
func (r Registry) Slides() []int {
	out := make([]int, 0, len(r))
	for n := range r {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// VisualizationError reports a visualization that failed to render.
type VisualizationError struct {
	Name  string
	Slide int
	Err   error
}

func (e *VisualizationError) Error() string {
	return fmt.Sprintf("visualization %s on slide %d: %v", e.Name, e.Slide, e.Err)
}

func (e *VisualizationError) Unwrap() error {
	return e.Err
}

// IsVisualizationError checks if an error is a visualization failure.
func IsVisualizationError(err error) bool {
	var visErr *VisualizationError
	return errors.As(err, &visErr)
}

// PanicError carries the value a visualization panicked with.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
