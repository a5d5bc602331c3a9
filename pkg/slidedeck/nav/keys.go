package nav

// Key is a host-independent key identity. Hosts translate their native key
// events into Keys before handing them to a Dispatcher.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeySpace
	KeyHome
	KeyEnd
	KeyEnter
	KeyPageUp
	KeyPageDown
)

// String returns the key's name as hosts report it.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	case KeySpace:
		return " "
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyEnter:
		return "Enter"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	default:
		return ""
	}
}

// ParseKey maps a key name, as reported by browsers and remote clients, to a Key.
func ParseKey(name string) Key {
	switch name {
	case "ArrowLeft", "Left":
		return KeyLeft
	case "ArrowRight", "Right":
		return KeyRight
	case " ", "Space", "Spacebar":
		return KeySpace
	case "Home":
		return KeyHome
	case "End":
		return KeyEnd
	case "Enter":
		return KeyEnter
	case "PageUp":
		return KeyPageUp
	case "PageDown":
		return KeyPageDown
	default:
		return KeyNone
	}
}

// Control identifies an on-screen navigation control.
type Control int

const (
	ControlPrevious Control = iota
	ControlNext
)
