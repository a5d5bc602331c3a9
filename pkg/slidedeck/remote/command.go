package remote

import (
	"fmt"
	"strconv"
	"strings"
)

// Verb names a remote navigation request.
type Verb int

const (
	VerbNext Verb = iota
	VerbPrevious
	VerbFirst
	VerbLast
	VerbGoTo
)

func (v Verb) String() string {
	switch v {
	case VerbNext:
		return "next"
	case VerbPrevious:
		return "previous"
	case VerbFirst:
		return "first"
	case VerbLast:
		return "last"
	case VerbGoTo:
		return "goto"
	}
	return "unknown"
}

// Command is one parsed websocket message.
type Command struct {
	Verb  Verb
	Slide int // Target of VerbGoTo
}

// ParseCommand parses a text message such as "next" or "goto 7".
func ParseCommand(text string) (Command, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	switch fields[0] {
	case "next":
		return Command{Verb: VerbNext}, nil
	case "previous", "prev":
		return Command{Verb: VerbPrevious}, nil
	case "first":
		return Command{Verb: VerbFirst}, nil
	case "last":
		return Command{Verb: VerbLast}, nil
	case "goto":
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("goto needs one slide number")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("invalid slide number %q", fields[1])
		}
		return Command{Verb: VerbGoTo, Slide: n}, nil
	}
	return Command{}, fmt.Errorf("unknown command %q", fields[0])
}

// Apply runs the command against p and reports whether the slide changed.
func (c Command) Apply(p Presenter) bool {
	switch c.Verb {
	case VerbNext:
		return p.Next()
	case VerbPrevious:
		return p.Previous()
	case VerbFirst:
		return p.GoToSlide(1)
	case VerbLast:
		return p.GoToSlide(p.TotalSlides())
	case VerbGoTo:
		return p.GoToSlide(c.Slide)
	}
	return false
}
