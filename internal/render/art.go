package render

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"github.com/arcanaland/cardcollector/internal/card"
	"github.com/arcanaland/cardcollector/internal/style"
)

// ArtLoader resolves card image URIs against a local art directory and
// converts the images to half-block ANSI art, caching the result.
type ArtLoader struct {
	Dir      string // Root that card image URIs are resolved against
	CacheDir string // Empty disables caching
}

// ImagePath maps a card's image URI onto the art directory
func (l *ArtLoader) ImagePath(c card.Card) string {
	rel := strings.TrimPrefix(c.Image, "/")
	return filepath.Join(l.Dir, filepath.FromSlash(rel))
}

// Load returns ANSI art for a card at the given size in character cells
func (l *ArtLoader) Load(c card.Card, width, height int) (string, error) {
	imagePath := l.ImagePath(c)
	if _, err := os.Stat(imagePath); err != nil {
		return "", fmt.Errorf("card %d art: %w", c.ID, err)
	}

	var cachePath string
	if l.CacheDir != "" {
		cacheDir := filepath.Join(l.CacheDir, "ansi_cache")
		if err := os.MkdirAll(cacheDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
		}
		key := fmt.Sprintf("%s@%dx%d", imagePath, width, height)
		cachePath = filepath.Join(cacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))

		if data, err := os.ReadFile(cachePath); err == nil {
			return string(data), nil
		}
	}

	art, err := generateAnsiArt(imagePath, width, height)
	if err != nil {
		return "", err
	}

	if cachePath != "" {
		if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
			return "", fmt.Errorf("failed to write ANSI art cache: %w", err)
		}
	}

	return art, nil
}

// generateAnsiArt decodes an image file and converts it to ANSI art
func generateAnsiArt(imagePath string, width, height int) (string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	return imageToAnsi(img, width, height), nil
}

// imageToAnsi converts an image to ANSI art. Each character cell covers a
// 2x2 pixel block: the top pair becomes the foreground of an upper half
// block, the bottom pair its background.
func imageToAnsi(img image.Image, width, height int) string {
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			col1, _ := colorful.MakeColor(getColorAt(resized, x, y))
			col2, _ := colorful.MakeColor(getColorAt(resized, x+1, y))
			col3, _ := colorful.MakeColor(getColorAt(resized, x, y+1))
			col4, _ := colorful.MakeColor(getColorAt(resized, x+1, y+1))

			fg := averageColor(col1, col2)
			bg := averageColor(col3, col4)

			buffer.WriteString(ansiBlock('▀', fg, bg))
		}
		if y+2 < height*2 {
			buffer.WriteString("\n")
		}
	}

	return buffer.String()
}

// getColorAt returns the color at a specific coordinate
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

// ansiBlock formats a character with 24-bit foreground and background colours
func ansiBlock(char rune, fg, bg colorful.Color) string {
	if colorize.NoColor {
		return string(char)
	}
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// swatch renders a vertical gradient block for a palette token. It stands in
// for card art when no image is available.
func swatch(p style.Palette, token string, width, height int) []string {
	rows := p.Gradient(token, height*2)
	lines := make([]string, height)
	for i := range lines {
		fg, bg := rows[i*2], rows[i*2+1]
		lines[i] = strings.Repeat(ansiBlock('▀', fg, bg), width)
	}
	return lines
}

// cardBack renders the reverse side of a card: a gradient field with a
// diamond lattice
func cardBack(p style.Palette, token string, width, height int) []string {
	rows := p.Gradient(token, height)
	lines := make([]string, height)
	for i := range lines {
		var b strings.Builder
		for x := 0; x < width; x++ {
			ch := '░'
			if (x+i)%4 == 0 || (x-i+height*4)%4 == 0 {
				ch = '◆'
			}
			b.WriteString(ansiBlock(ch, rows[i], rows[len(rows)-1-i]))
		}
		lines[i] = b.String()
	}
	return lines
}
