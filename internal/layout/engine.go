// Package layout maps a surah's demonstrative sequence to geometric
// primitives. The mapping is a pure function of the token sequence and the
// configured encoding tables: no randomness, no clock, no map-order
// dependence reaches the output.
package layout

import (
	"fmt"
	"math"

	"github.com/Suphian/quran-art/internal/model"
)

// Marker radius scaling: r = markerScale / sqrt(N), clamped so the densest
// surah stays legible and the sparsest does not dominate the canvas.
const (
	markerScale = 24.0
	markerMin   = 3.0
	markerMax   = 9.0
)

// Engine lays out one surah at a time as a turtle-walk polyline: each token
// turns the heading by its (spatial, temporal) axis pair and advances one
// unit step; the walked path is then normalized into the canvas.
type Engine struct {
	canvas         int
	margin         float64
	initialHeading float64
	strokeUnit     float64

	turns   map[[2]int]float64
	widths  map[model.Number]float64
	colors  map[model.Deixis]string
	markers map[model.Gender]model.PrimitiveKind
}

// NewEngine builds an engine from the layout configuration. The visual
// encoding must be total: every subtype value the classifier can produce and
// every axis pair must have an entry, otherwise construction fails before
// any output is written.
func NewEngine(cfg model.LayoutConfig) (*Engine, error) {
	e := &Engine{
		canvas:         cfg.CanvasSize,
		margin:         cfg.Margin,
		initialHeading: cfg.InitialHeading,
		strokeUnit:     cfg.StrokeUnit,
		turns:          make(map[[2]int]float64, len(cfg.Turns)),
		widths:         make(map[model.Number]float64, len(cfg.StrokeWidths)),
		colors:         make(map[model.Deixis]string, len(cfg.StrokeColors)),
		markers:        make(map[model.Gender]model.PrimitiveKind, len(cfg.MarkerShapes)),
	}
	if e.canvas <= 0 {
		return nil, fmt.Errorf("layout: canvas size must be positive, got %d", e.canvas)
	}
	if e.strokeUnit <= 0 {
		e.strokeUnit = 1
	}

	for _, rule := range cfg.Turns {
		e.turns[[2]int{rule.Spatial, rule.Temporal}] = rule.Degrees
	}
	for s := -1; s <= 1; s++ {
		for t := -1; t <= 1; t++ {
			if _, ok := e.turns[[2]int{s, t}]; !ok {
				return nil, fmt.Errorf("layout: no turn rule for axis pair (spatial=%d, temporal=%d)", s, t)
			}
		}
	}

	for _, n := range model.Numbers {
		w, ok := cfg.StrokeWidths[n]
		if !ok {
			return nil, fmt.Errorf("layout: no stroke width for number subtype %q", n)
		}
		e.widths[n] = w
	}
	for _, d := range model.Deixes {
		c, ok := cfg.StrokeColors[d]
		if !ok {
			return nil, fmt.Errorf("layout: no stroke color for deixis subtype %q", d)
		}
		e.colors[d] = c
	}
	for _, g := range model.Genders {
		shape, ok := cfg.MarkerShapes[g]
		if !ok {
			return nil, fmt.Errorf("layout: no marker shape for gender subtype %q", g)
		}
		switch shape {
		case "circle":
			e.markers[g] = model.KindCircle
		case "diamond":
			e.markers[g] = model.KindPolygon
		default:
			return nil, fmt.Errorf("layout: unknown marker shape %q for gender %q", shape, g)
		}
	}

	return e, nil
}

// Validate checks that every token's subtype values are covered by the
// encoding tables. With the closed subtype enums this can only fail when a
// token carries a value outside the enumerated set.
func (e *Engine) Validate(tokens []model.DemonstrativeToken) error {
	for _, tok := range tokens {
		if _, ok := e.widths[tok.Number]; !ok {
			return fmt.Errorf("layout: surah %d verse %d: unmapped number subtype %q", tok.Surah, tok.Verse, tok.Number)
		}
		if _, ok := e.colors[tok.Deixis]; !ok {
			return fmt.Errorf("layout: surah %d verse %d: unmapped deixis subtype %q", tok.Surah, tok.Verse, tok.Deixis)
		}
		if _, ok := e.markers[tok.Gender]; !ok {
			return fmt.Errorf("layout: surah %d verse %d: unmapped gender subtype %q", tok.Surah, tok.Verse, tok.Gender)
		}
	}
	return nil
}

// Layout produces the artwork for one surah group. A nil artwork (no error)
// is returned for an empty group; callers record the skip.
func (e *Engine) Layout(group model.SurahGroup) (*model.SurahArtwork, error) {
	if len(group.Tokens) == 0 {
		return nil, nil
	}
	if err := e.Validate(group.Tokens); err != nil {
		return nil, err
	}

	points := e.walk(group.Tokens)
	points = e.normalize(points)

	n := len(group.Tokens)
	radius := markerRadius(n)

	primitives := make([]model.GeometricPrimitive, 0, 2*n)
	for i, tok := range group.Tokens {
		color := e.colors[tok.Deixis]
		primitives = append(primitives, model.GeometricPrimitive{
			Kind:        model.KindLine,
			Points:      []model.Point{points[i], points[i+1]},
			StrokeWidth: e.widths[tok.Number] * e.strokeUnit,
			Stroke:      color,
		})
		primitives = append(primitives, e.marker(tok, points[i+1], radius, color))
	}

	return &model.SurahArtwork{
		Surah:      group.Surah,
		Width:      e.canvas,
		Height:     e.canvas,
		Primitives: primitives,
	}, nil
}

// walk runs the turtle: start at the origin heading InitialHeading, then for
// each token turn by its axis pair's angle and advance one unit.
func (e *Engine) walk(tokens []model.DemonstrativeToken) []model.Point {
	heading := e.initialHeading
	points := make([]model.Point, 0, len(tokens)+1)
	points = append(points, model.Point{})

	x, y := 0.0, 0.0
	for _, tok := range tokens {
		heading += e.turns[[2]int{tok.Spatial, tok.Temporal}]
		rad := heading * math.Pi / 180
		x += math.Cos(rad)
		y += math.Sin(rad)
		points = append(points, model.Point{X: x, Y: y})
	}
	return points
}

// normalize fits the walked path into the canvas with the configured margin,
// preserving aspect ratio and centering. Y grows upward in walk space but
// downward in canvas space, so it is flipped here.
func (e *Engine) normalize(points []model.Point) []model.Point {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	spanX := maxX - minX
	spanY := maxY - minY
	span := math.Max(math.Max(spanX, spanY), 1e-9)

	avail := float64(e.canvas) - 2*e.margin
	scale := avail / span

	// Center the path inside the canvas
	offsetX := (float64(e.canvas) - spanX*scale) / 2
	offsetY := (float64(e.canvas) - spanY*scale) / 2

	out := make([]model.Point, len(points))
	for i, p := range points {
		out[i] = model.Point{
			X: offsetX + (p.X-minX)*scale,
			Y: float64(e.canvas) - offsetY - (p.Y-minY)*scale,
		}
	}
	return out
}

func (e *Engine) marker(tok model.DemonstrativeToken, at model.Point, radius float64, color string) model.GeometricPrimitive {
	kind := e.markers[tok.Gender]
	if kind == model.KindCircle {
		return model.GeometricPrimitive{
			Kind:   model.KindCircle,
			Points: []model.Point{at},
			Radius: radius,
			Fill:   color,
		}
	}

	// Diamond: a 4-vertex ring around the endpoint
	return model.GeometricPrimitive{
		Kind: model.KindPolygon,
		Points: []model.Point{
			{X: at.X, Y: at.Y - radius},
			{X: at.X + radius, Y: at.Y},
			{X: at.X, Y: at.Y + radius},
			{X: at.X - radius, Y: at.Y},
		},
		Fill: color,
	}
}

func markerRadius(n int) float64 {
	r := markerScale / math.Sqrt(float64(n))
	return math.Min(math.Max(r, markerMin), markerMax)
}
