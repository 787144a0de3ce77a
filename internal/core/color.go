package core

// Color is a terminal color understood by the platform renderer:
// an ANSI index ("208") or a hex value ("#ff8800").
// The zero value leaves the terminal default in place.
type Color string

// Named colors for UI chrome that is not themed.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "15"
	ColorGray    Color = "245"
	ColorDim     Color = "240"
	ColorYellow  Color = "229"
	ColorRed     Color = "9"
)

// IsDefault reports whether c leaves the terminal color unchanged.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
