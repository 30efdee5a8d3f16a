// Package report renders the labeled, column-aligned sections the
// infoutils tools print. Color handling is decided once when a Printer
// is constructed and threaded through every call; there is no global
// color state.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects how a Printer decides on ANSI output.
type ColorMode string

const (
	// ColorAuto enables color only when the destination is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways emits ANSI sequences unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever strips all styling.
	ColorNever ColorMode = "never"
)

// Valid reports whether m is one of the three recognized modes.
func (m ColorMode) Valid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// Printer writes report sections to a single destination.
type Printer struct {
	w io.Writer

	title lipgloss.Style
	bold  lipgloss.Style
	dim   lipgloss.Style
	warn  lipgloss.Style
	alert lipgloss.Style
}

// NewPrinter builds a Printer for w. ColorAuto defers to the renderer's
// terminal probe; the other modes force the profile.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:     w,
		title: r.NewStyle().Bold(true),
		bold:  r.NewStyle().Bold(true),
		dim:   r.NewStyle().Faint(true),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")),
		alert: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Section prints a bold title underlined with '=' characters.
func (p *Printer) Section(title string) {
	fmt.Fprintln(p.w, p.title.Render(title))
	fmt.Fprintln(p.w, strings.Repeat("=", len(title)))
}

// Rule prints the 70-dash separator used inside tables.
func (p *Printer) Rule() {
	fmt.Fprintln(p.w, strings.Repeat("-", 70))
}

// Row prints a label padded to 18 columns followed by its value.
func (p *Printer) Row(label, value string) {
	fmt.Fprintf(p.w, "%-18s%s\n", label+":", value)
}

// AnnotatedRow prints a Row whose value column is 12 wide, followed by
// a dimmed parenthetical note.
func (p *Printer) AnnotatedRow(label, value, note string) {
	fmt.Fprintf(p.w, "%-18s%-12s%s\n", label+":", value, p.dim.Render("("+note+")"))
}

// SubRow prints an indented label padded to 16 columns, used for the
// per-device blocks in diskls.
func (p *Printer) SubRow(label, value string) {
	fmt.Fprintf(p.w, "  %-16s%s\n", label+":", value)
}

// Heading prints a bold standalone line, such as a device path.
func (p *Printer) Heading(text string) {
	fmt.Fprintln(p.w, p.bold.Render(text))
}

// Warning prints a yellow warning line.
func (p *Printer) Warning(text string) {
	fmt.Fprintln(p.w, p.warn.Render("Warning: "+text))
}

// Dim returns text styled for de-emphasis, for inline use.
func (p *Printer) Dim(text string) string {
	return p.dim.Render(text)
}

// Blank prints an empty line between sections.
func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// Printf writes unstyled formatted text.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Println writes an unstyled line.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.w, args...)
}
