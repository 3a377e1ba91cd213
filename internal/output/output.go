package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer handles formatted output to a writer.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	color  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
}

// NewPrinter creates a new Printer.
// If color is true, styles are rendered with a true-color profile regardless
// of what the writer is; otherwise output is plain ASCII.
func NewPrinter(writer io.Writer, color bool) *Printer {
	renderer := lipgloss.NewRenderer(writer)
	if color {
		renderer.SetColorProfile(termenv.TrueColor)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	styles := &Styles{
		Error:   renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success: renderer.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Warning: renderer.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Bold:    renderer.NewStyle().Bold(true),
		Dim:     renderer.NewStyle().Foreground(lipgloss.Color("8")),
	}

	if !color {
		styles.Error = renderer.NewStyle()
		styles.Success = renderer.NewStyle()
		styles.Warning = renderer.NewStyle()
		styles.Bold = renderer.NewStyle()
		styles.Dim = renderer.NewStyle()
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		color:  color,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors and notices.
// Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// WithColor returns a printer on the same writers with colors switched on or off.
func (p *Printer) WithColor(color bool) *Printer {
	return NewPrinter(p.w, color).WithStderr(p.errW)
}

// Color returns true if the printer renders colors.
func (p *Printer) Color() bool {
	return p.color
}

// Error outputs an error to the error writer.
// Silent errors print nothing; usage text, when attached, is printed to the
// main writer before the message.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{
			Code:    ExitBackend,
			Message: err.Error(),
		}
	}
	if exitErr.Silent {
		return
	}

	if exitErr.Usage != "" {
		mustWrite(fmt.Fprint(p.w, exitErr.Usage))
	}
	if exitErr.Message == "" {
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("error"), exitErr.Message))
}

// Notice writes an informational message to the error writer.
func (p *Printer) Notice(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.errW, format+"\n", args...))
}

// Success writes a line in the success style.
func (p *Printer) Success(line string) {
	mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(line)))
}

// Warning writes a line in the warning style.
func (p *Printer) Warning(line string) {
	mustWrite(fmt.Fprintln(p.w, p.styles.Warning.Render(line)))
}

// Heading writes a bold line.
func (p *Printer) Heading(line string) {
	mustWrite(fmt.Fprintln(p.w, p.styles.Bold.Render(line)))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// mustWrite panics if a write operation fails.
// Use this to wrap write operations that should never fail
// (e.g., writing to stdout/stderr or buffers).
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
