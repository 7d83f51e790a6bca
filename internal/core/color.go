package core

// Color represents a foreground color for a screen cell.
// Values are "#rrggbb" hex strings; the empty string is the terminal default.
type Color string

// Predefined colors for UI elements.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#ffffff"
	ColorGray    Color = "#6b7280"
	ColorDark    Color = "#1e293b"
	ColorRed     Color = "#ef4444"
	ColorGreen   Color = "#22c55e"
	ColorYellow  Color = "#facc15"
	ColorGold    Color = "#fde047"
	ColorOrange  Color = "#f97316"
	ColorBlue    Color = "#38bdf8"
	ColorPurple  Color = "#a855f7"
)

// IsDefault reports whether the color falls back to the terminal default.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
