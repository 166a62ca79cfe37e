package colors

import "github.com/charmbracelet/lipgloss"

// Colors used for everything around the swatches themselves.
type ColorPalette struct {
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Text   lipgloss.Color
}

func DefaultDarkColorPalette() ColorPalette {
	return ColorPalette{
		Accent: lipgloss.Color("212"),
		Muted:  lipgloss.Color("244"),
		Text:   lipgloss.Color("255"),
	}
}

func DefaultLightColorPalette() ColorPalette {
	return ColorPalette{
		Accent: lipgloss.Color("162"),
		Muted:  lipgloss.Color("244"),
		Text:   lipgloss.Color("0"),
	}
}

func ForBackground(dark bool) ColorPalette {
	if dark {
		return DefaultDarkColorPalette()
	}
	return DefaultLightColorPalette()
}
