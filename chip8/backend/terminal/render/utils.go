package render

// Half-block glyphs used to fit two pixel rows into one terminal cell.
const (
	FullBlock  = '█'
	UpperBlock = '▀'
	LowerBlock = '▄'
	Empty      = ' '
)

// GetHalfBlockChar returns the character that draws a cell whose upper half
// is top and lower half is bottom, both 0 (off) or 1 (on).
func GetHalfBlockChar(top, bottom byte) rune {
	switch {
	case top != 0 && bottom != 0:
		return FullBlock
	case top != 0:
		return UpperBlock
	case bottom != 0:
		return LowerBlock
	}
	return Empty
}

// Truncate shortens s to at most width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width > 3 {
		return string(runes[:width-3]) + "..."
	}
	return string(runes[:width])
}
