package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// RenderOptions configures Render.
type RenderOptions struct {
	// Color enables ANSI colours in the output.
	Color bool
}

// Render writes a diagnostic for err to w: the error message, the position
// of the error in input, and the offending source line with a caret
// underline. Errors that carry no Span are written as a bare message.
func Render(w io.Writer, input string, err error, opts RenderOptions) error {
	if err == nil {
		return nil
	}
	msgColor := color.New(color.FgRed, color.Bold)
	gutterColor := color.New(color.FgBlue, color.Bold)
	caretColor := color.New(color.FgRed)
	for _, c := range []*color.Color{msgColor, gutterColor, caretColor} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var b strings.Builder
	b.WriteString(msgColor.Sprint(err.Error()))
	b.WriteByte('\n')

	var located Error
	if !stderrors.As(err, &located) {
		_, werr := io.WriteString(w, b.String())
		return werr
	}

	span := located.Span()
	pos := PositionFor(input, span.Start)
	lineStart, lineEnd := lineAt(input, pos.Offset)
	line := input[lineStart:lineEnd]

	num := strconv.Itoa(pos.Line)
	pad := strings.Repeat(" ", len(num))
	fmt.Fprintf(&b, "%s%s %s\n", pad, gutterColor.Sprint("-->"), pos)
	fmt.Fprintf(&b, "%s %s\n", pad, gutterColor.Sprint("|"))
	fmt.Fprintf(&b, "%s %s %s\n", gutterColor.Sprint(num), gutterColor.Sprint("|"), line)

	end := max(pos.Offset, min(span.End, lineEnd))
	width := max(1, runewidth.StringWidth(input[pos.Offset:end]))
	fmt.Fprintf(&b, "%s %s %s%s\n", pad, gutterColor.Sprint("|"),
		indentFor(input[lineStart:pos.Offset]), caretColor.Sprint(strings.Repeat("^", width)))

	_, werr := io.WriteString(w, b.String())
	return werr
}

// indentFor returns blank space as wide as prefix is on screen, keeping tabs
// so the caret lines up however the terminal expands them.
func indentFor(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

// AutoColor reports whether w is a terminal that should receive colour.
// It honours the NO_COLOR convention.
func AutoColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
