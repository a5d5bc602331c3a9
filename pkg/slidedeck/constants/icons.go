package constants

// Glyphs drawn by the terminal and window hosts for navigation affordances.
const (
	ArrowLeft  = "◀" // Previous control
	ArrowRight = "▶" // Next control
	DotActive  = "●" // Current slide indicator
	DotIdle    = "○" // Other slide indicators
	Check      = "✓" // Shown next to the completion label
)
