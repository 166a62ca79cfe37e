package palette

import (
	"bufio"
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrTooShort    = errors.New("palette is too short")
	ErrOutOfRange  = errors.New("palette index out of range")
	ErrUnavailable = errors.New("palette file is unavailable")
)

const (
	// Number of colors in a complete palette.
	Size = 256

	// Name of the file the palette used to be read from unconditionally.
	DefaultFile = "xpalettevals"
)

// A single color, exactly as it appeared on its line minus the surrounding
// whitespace. It is never parsed, so hex codes, named colors and rgb() forms
// all pass through unchanged.
type Token string

// Colors in file order, Palette[i] comes from line i.
type Palette []Token

// Reads the palette from the file at path. The file is closed before
// returning, regardless of the outcome.
func Load(path string) (Palette, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(
			&unavailableError{err: err},
			"could not open palette",
		)
	}
	defer file.Close()

	palette, err := Read(file)
	if err != nil {
		// Only failures of the file itself make it unavailable.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = &unavailableError{err: err}
		}
		return nil, errors.Wrapf(err, "could not read palette %s", path)
	}

	slog.Debug("loaded palette", "path", path, "colors", len(palette))
	return palette, nil
}

// Splits r into lines and trims each one. Lines end on \n, \r or \r\n and
// have no length limit. Blank lines are kept as empty tokens so that line
// numbers and indices stay aligned.
func Read(r io.Reader) (Palette, error) {
	palette := make(Palette, 0, Size)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	scanner.Split(scanLines)
	for scanner.Scan() {
		palette = append(palette, Token(strings.TrimSpace(scanner.Text())))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return palette, nil
}

// Like bufio.ScanLines, but a lone \r ends a line too.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}

		// A \r at the end of the buffer could still be followed by a \n.
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Returns the color at index i.
func (p Palette) At(i int) (Token, error) {
	if i < 0 || i >= len(p) {
		return "", errors.Wrapf(ErrOutOfRange, "no color at index %d, palette has %d", i, len(p))
	}
	return p[i], nil
}

// Checks that the palette has at least n colors.
func (p Palette) Require(n int) error {
	if len(p) < n {
		return errors.Wrapf(ErrTooShort, "need %d colors, found %d", n, len(p))
	}
	return nil
}

// Keeps both the unavailable kind and the underlying os error matchable.
type unavailableError struct {
	err error
}

func (e *unavailableError) Error() string {
	return e.err.Error()
}

func (e *unavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

func (e *unavailableError) Unwrap() error {
	return e.err
}
