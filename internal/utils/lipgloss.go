package utils

import "github.com/charmbracelet/lipgloss"

// Returns a fixed size box style built on top of base.
func Box(base lipgloss.Style, width, height int, xCentered bool, yCentered bool) lipgloss.Style {
	style := base.Width(width).Height(height)

	if xCentered {
		style = style.AlignHorizontal(lipgloss.Center)
	}
	if yCentered {
		style = style.AlignVertical(lipgloss.Center)
	}

	return style
}
