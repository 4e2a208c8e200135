package cputemp

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/cloudradar-monitoring/cputemp/pkg/monitoring/sensors"
)

const msgNoTemperature = "Could not read temperature."

// Console prints one status line per reading.
// In place mode rewrites the same terminal line using a carriage return.
type Console struct {
	w       io.Writer
	inPlace bool

	lastWidth int
}

// NewConsole writes to stdout. ConsoleModeInPlace always ends lines with a carriage return,
// ConsoleModeAuto only when stdout is a terminal.
func NewConsole(mode string) *Console {
	inPlace := mode == ConsoleModeInPlace
	if mode == ConsoleModeAuto {
		fd := os.Stdout.Fd()
		inPlace = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return newConsole(colorable.NewColorableStdout(), inPlace)
}

func newConsole(w io.Writer, inPlace bool) *Console {
	return &Console{w: w, inPlace: inPlace}
}

func FormatTemperature(t *sensors.Temperature) string {
	if t == nil {
		return msgNoTemperature
	}
	return fmt.Sprintf("CPU Temperature: %.1f°C", t.Celsius)
}

func (c *Console) Render(t *sensors.Temperature) error {
	line := FormatTemperature(t)

	if !c.inPlace {
		_, err := fmt.Fprintln(c.w, line)
		return err
	}

	// pad over leftovers of a longer previous line
	width := utf8.RuneCountInString(line)
	if pad := c.lastWidth - width; pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	c.lastWidth = width

	_, err := io.WriteString(c.w, line+"\r")
	return err
}

// Close moves the cursor past an in-place line.
func (c *Console) Close() error {
	if !c.inPlace || c.lastWidth == 0 {
		return nil
	}
	_, err := io.WriteString(c.w, "\n")
	return err
}
