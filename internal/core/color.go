package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for map elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Glyph is how a coin kind is drawn on the map.
type Glyph struct {
	Rune  rune
	Color Color
}

// Known kind glyphs. Kinds not listed here use fallbackGlyph.
var kindGlyphs = map[string]Glyph{
	"gold":   {Rune: '$', Color: ColorBrightYellow},
	"silver": {Rune: '¢', Color: ColorBrightWhite},
	"bronze": {Rune: 'o', Color: ColorOrange},
}

var fallbackGlyph = Glyph{Rune: '*', Color: ColorCyan}

// KindGlyph returns the glyph for a coin kind name.
func KindGlyph(kind string) Glyph {
	if g, ok := kindGlyphs[kind]; ok {
		return g
	}
	return fallbackGlyph
}
