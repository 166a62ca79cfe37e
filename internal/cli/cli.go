package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ksdme/xpalette/internal/config"
	"github.com/ksdme/xpalette/internal/grid"
	"github.com/ksdme/xpalette/internal/palette"
	"github.com/ksdme/xpalette/internal/preview"
	"github.com/ksdme/xpalette/internal/tui/colors"
	"github.com/ksdme/xpalette/internal/utils"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

const (
	ExitOK          = 0
	ExitUnavailable = 1
	ExitTooShort    = 2
	// Anything else, usually stdout going away mid write.
	ExitFailure = 3
	ExitUsage   = 255
)

type Args struct {
	File       string `arg:"positional" help:"palette file, one color per line [default: $XPALETTE_FILE or xpalettevals]"`
	Strict     bool   `arg:"--strict" help:"refuse palettes with fewer than 256 colors before emitting anything"`
	Preview    bool   `arg:"--preview" help:"draw the palette on the terminal instead of emitting svg"`
	Debug      bool   `arg:"--debug" help:"log debug information to stderr"`
}

func (Args) Description() string {
	return "Emits svg text labels for a 256 color palette laid out on a 16x16 grid."
}

// Runs the generator and returns the exit code of the process. Fragments and
// previews go to stdout, everything else to stderr.
func Run(args []string, stdout io.Writer, stderr io.Writer) int {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "error:", err.Error())
		return ExitUsage
	}

	var parsed Args
	if retcode, consumed := utils.ParseArgs(stdout, stderr, "xpalettegen", args, &parsed); consumed {
		return retcode
	}
	if parsed.File != "" {
		settings.PaletteFile = parsed.File
	}
	if settings.PaletteFile == "" {
		settings.PaletteFile = palette.DefaultFile
	}
	settings.Strict = settings.Strict || parsed.Strict
	settings.Debug = settings.Debug || parsed.Debug

	if settings.Debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	err = generate(settings, parsed.Preview, stdout)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintln(stderr, "error:", err.Error())
	switch {
	case errors.Is(err, palette.ErrUnavailable):
		return ExitUnavailable
	case errors.Is(err, palette.ErrTooShort), errors.Is(err, palette.ErrOutOfRange):
		return ExitTooShort
	default:
		return ExitFailure
	}
}

func generate(settings config.Settings, showPreview bool, stdout io.Writer) error {
	loaded, err := palette.Load(settings.PaletteFile)
	if err != nil {
		return err
	}

	if settings.Strict {
		if err := loaded.Require(palette.Size); err != nil {
			return errors.Wrap(err, settings.PaletteFile)
		}
	}

	if showPreview {
		dark := termenv.NewOutput(stdout).HasDarkBackground()
		return preview.New(stdout, colors.ForBackground(dark)).Print(loaded)
	}

	written, err := grid.Emit(stdout, loaded)
	if err != nil {
		slog.Debug("emission stopped early", "written", written)
		return err
	}

	return nil
}
