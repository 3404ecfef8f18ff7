// Package output provides the terminal renderer for CLI commands.
// It adapts between styled text for interactive terminals, plain text for
// pipes, and machine-readable JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer. ModeAuto resolves to styled text on a
// terminal and plain text otherwise.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	styled := false
	if mode == ModeAuto || mode == ModeText {
		if f, ok := out.(*os.File); ok {
			styled = termenv.NewOutput(f).Profile != termenv.Ascii
		}
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: NewStyles(styled),
	}
}

// EffectiveMode returns the resolved output mode.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// Styles returns the active style set.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Println writes a line to standard output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to standard output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Success writes a styled success line.
func (r *Renderer) Success(msg string) {
	r.Println(r.styles.Success.Render("[OK] " + msg))
}

// Warning writes a styled warning line to standard error.
func (r *Renderer) Warning(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Warning.Render("[W] "+msg))
}

// JSON encodes v to standard output with indentation.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
