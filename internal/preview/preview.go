// Package preview draws a palette as a grid of colored cells on a terminal,
// laid out the same way as the emitted svg labels.
package preview

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/ksdme/xpalette/internal/grid"
	"github.com/ksdme/xpalette/internal/palette"
	"github.com/ksdme/xpalette/internal/tui/colors"
	"github.com/ksdme/xpalette/internal/utils"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

const (
	labelWidth = 3
	cellWidth  = labelWidth + 2
)

type Previewer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	chrome   colors.ColorPalette
}

// The options are handed to the underlying termenv output, pass
// termenv.WithProfile to force a color profile.
func New(w io.Writer, chrome colors.ColorPalette, opts ...termenv.OutputOption) *Previewer {
	return &Previewer{
		out:      w,
		renderer: lipgloss.NewRenderer(w, opts...),
		chrome:   chrome,
	}
}

func (v *Previewer) Render(p palette.Palette) (string, error) {
	title := v.renderer.NewStyle().
		Foreground(v.chrome.Accent).
		Bold(true).
		Render("palette")
	count := v.renderer.NewStyle().
		Foreground(v.chrome.Muted).
		Render(fmt.Sprintf(" %d colors", len(p)))

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, title, count)}

	cell := utils.Box(v.renderer.NewStyle(), cellWidth, 1, true, false).
		Foreground(v.chrome.Text)

	row := make([]string, 0, grid.Columns)
	for _, fragment := range grid.Layout(palette.Size) {
		color, err := p.At(fragment.Index)
		if err != nil {
			return "", errors.Wrap(err, "could not render preview")
		}

		// Tokens are handed over as is, lipgloss drops anything it
		// cannot make sense of.
		label := runewidth.FillLeft(strconv.Itoa(fragment.Index), labelWidth)
		row = append(row, cell.Background(lipgloss.Color(color)).Render(label))

		if len(row) == grid.Columns {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = row[:0]
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...), nil
}

func (v *Previewer) Print(p palette.Palette) error {
	rendered, err := v.Render(p)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(v.out, rendered)
	return errors.Wrap(err, "could not write preview")
}
