package grid

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ksdme/xpalette/internal/palette"
	"github.com/pkg/errors"
)

const (
	// Swatches per row.
	Columns = 16

	// Distance in pixels between neighbouring swatches, on both axes.
	Cell = 25
)

// Inkscape flavoured markup for a single label. The indices are, in order,
// the palette index, y, x and the fill.
const fragmentFormat = `<text
       id="text%[1]d"
       y="%[2]d"
       x="%[3]d"
       style="font-size:10px;line-height:1.25;font-family:'Linux Libertine Display O';-inkscape-font-specification:'Linux Libertine Display O';fill:%[4]s;fill-opacity:1"
       xml:space="preserve"><tspan
         style="stroke-width:0.26458332"
         y="%[2]d"
         x="%[3]d"
         id="tspan21">%[1]d</tspan></text>
`

// A positioned label for one palette entry.
type Fragment struct {
	Index int
	X     int
	Y     int
	Color palette.Token
}

// Computes the positions of the first n indices. Color is left empty.
func Layout(n int) []Fragment {
	n = max(n, 0)
	fragments := make([]Fragment, 0, n)

	// The row offset moves down one cell every time a new row starts,
	// beginning one cell above the origin so that row zero sits at y=0.
	y := -Cell
	for i := 0; i < n; i++ {
		if i%Columns == 0 {
			y += Cell
		}

		fragments = append(fragments, Fragment{
			Index: i,
			X:     (i % Columns) * Cell,
			Y:     y,
		})
	}

	return fragments
}

// Writes the markup of a single fragment followed by a newline.
func Write(w io.Writer, f Fragment) error {
	_, err := fmt.Fprintf(w, fragmentFormat, f.Index, f.Y, f.X, f.Color)
	return err
}

// Writes one fragment for every index of a complete palette, in order.
// Fragments go straight to w, so whatever was written before a failure
// stays written. Returns the number of fragments written.
func Emit(w io.Writer, p palette.Palette) (int, error) {
	written := 0

	for _, fragment := range Layout(palette.Size) {
		color, err := p.At(fragment.Index)
		if err != nil {
			return written, errors.Wrap(err, "could not emit fragment")
		}
		fragment.Color = color

		if err := Write(w, fragment); err != nil {
			return written, errors.Wrapf(err, "could not write fragment %d", fragment.Index)
		}
		written++
	}

	slog.Debug("emitted fragments", "count", written)
	return written, nil
}
