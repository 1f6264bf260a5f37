package render

// Point is an (x, y) offset on the canvas.
type Point struct {
	X float64
	Y float64
}

// Settings controls the look of the rendered map. Colors are SVG color
// strings ("green", "#ff0000", "rgba(255,255,255,0.85)").
type Settings struct {
	Width   float64
	Height  float64
	Padding float64

	LineWidth  float64
	StopRadius float64

	BusLabelFontSize int
	BusLabelOffset   Point

	StopLabelFontSize int
	StopLabelOffset   Point

	UnderlayerColor string
	UnderlayerWidth float64

	ColorPalette []string
}

// DefaultSettings mirrors the defaults applied when the input document
// omits a render setting.
func DefaultSettings() Settings {
	return Settings{
		Width:             800,
		Height:            600,
		Padding:           5,
		LineWidth:         4,
		StopRadius:        5,
		BusLabelFontSize:  20,
		StopLabelFontSize: 15,
		UnderlayerColor:   "white",
		UnderlayerWidth:   3,
		ColorPalette:      []string{"green"},
	}
}

// paletteColor cycles through the palette; an empty palette falls back to
// black so rendering never indexes out of range.
func (s Settings) paletteColor(i int) string {
	if len(s.ColorPalette) == 0 {
		return "black"
	}
	return s.ColorPalette[i%len(s.ColorPalette)]
}
