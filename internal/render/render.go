// Package render prints showcase views to a terminal. Layout follows a
// two-column scheme: artwork (or a gradient swatch) on the left and
// coloured card details on the right.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/arcanaland/cardcollector/internal/style"
)

const (
	defaultWidth = 80
	artWidth     = 20
	artHeight    = 8
	spacing      = 3
)

// Renderer writes views to Out
type Renderer struct {
	Out     io.Writer
	Width   int
	Palette style.Palette
	Art     *ArtLoader // Optional; cards fall back to gradient swatches
}

// New creates a renderer for out using the terminal width of stdout
func New(out io.Writer) *Renderer {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = defaultWidth
	}
	return &Renderer{
		Out:     out,
		Width:   width,
		Palette: style.DefaultPalette,
	}
}

// DisableColor turns off all ANSI colour output
func DisableColor() {
	colorize.NoColor = true
}

// tokenColor returns a fatih/color printer for a palette token
func (r *Renderer) tokenColor(token string, attrs ...colorize.Attribute) *colorize.Color {
	cr, cg, cb := r.Palette.Color(token).RGB255()
	c := colorize.RGB(int(cr), int(cg), int(cb))
	c.Add(attrs...)
	return c
}

// badge renders a bracketed label in a token's colour
func (r *Renderer) badge(token, label string) string {
	return r.tokenColor(token, colorize.Bold).Sprintf("[%s]", label)
}

func (r *Renderer) heading(text string) {
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, colorize.New(colorize.Bold, colorize.FgHiWhite).Sprint(text))
	fmt.Fprintln(r.Out, colorize.HiBlackString("%s", strings.Repeat("─", min(visibleWidth(text)+4, r.Width))))
}

func (r *Renderer) println(a ...any) {
	fmt.Fprintln(r.Out, a...)
}

// sideBySide prints left and right line blocks next to each other
func (r *Renderer) sideBySide(left, right []string) {
	leftWidth := 0
	for _, line := range left {
		leftWidth = max(leftWidth, visibleWidth(line))
	}
	infoStartCol := leftWidth + spacing

	maxLines := max(len(left), len(right))
	for i := 0; i < maxLines; i++ {
		var b strings.Builder
		b.WriteString("  ")
		if i < len(left) {
			b.WriteString(left[i])
			b.WriteString(strings.Repeat(" ", infoStartCol-visibleWidth(left[i])))
		} else {
			b.WriteString(strings.Repeat(" ", infoStartCol))
		}
		if i < len(right) {
			b.WriteString(right[i])
		}
		fmt.Fprintln(r.Out, strings.TrimRight(b.String(), " "))
	}
}

// infoWidth is the text width available to the right of the art column
func (r *Renderer) infoWidth() int {
	w := r.Width - artWidth - spacing - 4
	if w < 20 {
		w = 20
	}
	return w
}

// wrapText wraps text to a specified display width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if runewidth.StringWidth(currentLine)+1+runewidth.StringWidth(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// visibleWidth is the display width of s with ANSI escapes removed
func visibleWidth(s string) int {
	return runewidth.StringWidth(stripAnsi(s))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
