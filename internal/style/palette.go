package style

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Stops is a two-colour gradient, light to dark
type Stops struct {
	From string // Hex colour
	To   string // Hex colour
}

// Palette maps display tokens to colour stops
type Palette map[string]Stops

// DefaultPalette is the dark-theme palette of the showcase
var DefaultPalette = Palette{
	"common":    {From: "#9ca3af", To: "#4b5563"},
	"rare":      {From: "#60a5fa", To: "#1d4ed8"},
	"legendary": {From: "#fbbf24", To: "#b45309"},
	"muted":     {From: "#6b7280", To: "#374151"},
	"primary":   {From: "#a78bfa", To: "#6d28d9"},
	"secondary": {From: "#22d3ee", To: "#0e7490"},
	"accent":    {From: "#fb923c", To: "#c2410c"},
}

// fallback is used for unknown tokens and unparsable hex values
var fallback = colorful.Color{R: 0.6, G: 0.6, B: 0.6}

// Color returns the primary (light) colour of a token
func (p Palette) Color(token string) colorful.Color {
	from, _ := p.stops(token)
	return from
}

// Gradient blends a token's stops into steps colours, light to dark.
// steps below 1 yields an empty slice; a single step is the light stop.
func (p Palette) Gradient(token string, steps int) []colorful.Color {
	if steps < 1 {
		return nil
	}
	from, to := p.stops(token)
	colors := make([]colorful.Color, steps)
	if steps == 1 {
		colors[0] = from
		return colors
	}
	colors[0], colors[steps-1] = from, to
	for i := 1; i < steps-1; i++ {
		t := float64(i) / float64(steps-1)
		colors[i] = from.BlendLab(to, t).Clamped()
	}
	return colors
}

func (p Palette) stops(token string) (colorful.Color, colorful.Color) {
	s, ok := p[token]
	if !ok {
		return fallback, fallback
	}
	from, err := colorful.Hex(s.From)
	if err != nil {
		from = fallback
	}
	to, err := colorful.Hex(s.To)
	if err != nil {
		to = from
	}
	return from, to
}
