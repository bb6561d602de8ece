package core

// Color is the foreground color of a screen cell. World entities carry one
// too, so the renderer does not need to know about entity kinds.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

// palette holds the name and ANSI 256-color index of every color.
// ColorDefault keeps the terminal's own foreground and has no index.
var palette = [colorCount]struct {
	name string
	ansi string
}{
	ColorDefault:       {"default", ""},
	ColorRed:           {"red", "1"},
	ColorGreen:         {"green", "2"},
	ColorYellow:        {"yellow", "3"},
	ColorBlue:          {"blue", "4"},
	ColorMagenta:       {"magenta", "5"},
	ColorCyan:          {"cyan", "6"},
	ColorWhite:         {"white", "7"},
	ColorBrightRed:     {"bright-red", "9"},
	ColorBrightGreen:   {"bright-green", "10"},
	ColorBrightYellow:  {"bright-yellow", "11"},
	ColorBrightBlue:    {"bright-blue", "12"},
	ColorBrightMagenta: {"bright-magenta", "13"},
	ColorBrightCyan:    {"bright-cyan", "14"},
	ColorBrightWhite:   {"bright-white", "15"},
	ColorOrange:        {"orange", "208"},
	ColorGray:          {"gray", "245"},
}

// Colors returns every defined color in palette order.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i) //#nosec G115 -- bounded by colorCount
	}
	return out
}

// String returns the color name.
func (c Color) String() string {
	if c >= colorCount {
		return "unknown"
	}
	return palette[c].name
}

// ANSI returns the 256-color palette index for the color.
// It reports false for ColorDefault and unknown colors.
func (c Color) ANSI() (string, bool) {
	if c >= colorCount || palette[c].ansi == "" {
		return "", false
	}
	return palette[c].ansi, true
}
