package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/Suphian/quran-art/internal/model"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(model.DefaultConfig().Layout)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func demoToken(verse, word int, deixis model.Deixis, gender model.Gender, number model.Number, spatial, temporal int) model.DemonstrativeToken {
	return model.DemonstrativeToken{
		TokenRecord: model.TokenRecord{Surah: 1, Verse: verse, Word: word, Form: "هَذَا"},
		Deixis:      deixis,
		Gender:      gender,
		Number:      number,
		Spatial:     spatial,
		Temporal:    temporal,
	}
}

func TestNewEngine_RejectsIncompleteEncoding(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.LayoutConfig)
	}{
		{"missing turn rule", func(cfg *model.LayoutConfig) {
			cfg.Turns = cfg.Turns[:len(cfg.Turns)-1]
		}},
		{"missing stroke width", func(cfg *model.LayoutConfig) {
			delete(cfg.StrokeWidths, model.NumberDual)
		}},
		{"missing stroke color", func(cfg *model.LayoutConfig) {
			delete(cfg.StrokeColors, model.DeixisDistal)
		}},
		{"missing marker shape", func(cfg *model.LayoutConfig) {
			delete(cfg.MarkerShapes, model.GenderFeminine)
		}},
		{"unknown marker shape", func(cfg *model.LayoutConfig) {
			cfg.MarkerShapes[model.GenderFeminine] = "star"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := model.DefaultConfig().Layout
			tt.mutate(&cfg)
			if _, err := NewEngine(cfg); err == nil {
				t.Error("Expected construction error for incomplete encoding, got nil")
			}
		})
	}
}

func TestEngine_Determinism(t *testing.T) {
	e := testEngine(t)

	group := model.SurahGroup{
		Surah: 1,
		Tokens: []model.DemonstrativeToken{
			demoToken(1, 1, model.DeixisProximal, model.GenderMasculine, model.NumberSingular, -1, 1),
			demoToken(1, 5, model.DeixisDistal, model.GenderFeminine, model.NumberPlural, 1, -1),
			demoToken(2, 3, model.DeixisProximal, model.GenderFeminine, model.NumberDual, 0, 0),
		},
	}

	first, err := e.Layout(group)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	second, err := e.Layout(group)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical input to yield identical primitives")
	}
}

func TestEngine_EmptyGroupYieldsNoArtwork(t *testing.T) {
	e := testEngine(t)

	art, err := e.Layout(model.SurahGroup{Surah: 9})
	if err != nil {
		t.Fatalf("Expected no error for empty group, got %v", err)
	}
	if art != nil {
		t.Errorf("Expected nil artwork for empty group, got %+v", art)
	}
}

func TestEngine_SingleTokenGeometry(t *testing.T) {
	e := testEngine(t)

	// Neutral axes: no turn, so the walk goes straight up from the start
	// heading and the normalized segment is a centered vertical line.
	group := model.SurahGroup{
		Surah:  1,
		Tokens: []model.DemonstrativeToken{demoToken(1, 1, model.DeixisProximal, model.GenderMasculine, model.NumberSingular, 0, 0)},
	}

	art, err := e.Layout(group)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(art.Primitives) != 2 {
		t.Fatalf("Expected line + marker, got %d primitives", len(art.Primitives))
	}

	line := art.Primitives[0]
	if line.Kind != model.KindLine {
		t.Fatalf("Expected first primitive to be a line, got %s", line.Kind)
	}
	p0, p1 := line.Points[0], line.Points[1]
	if math.Abs(p0.X-400) > 1e-6 || math.Abs(p1.X-400) > 1e-6 {
		t.Errorf("Expected centered vertical line at x=400, got x=%.2f and x=%.2f", p0.X, p1.X)
	}
	if math.Abs(p0.Y-760) > 1e-6 || math.Abs(p1.Y-40) > 1e-6 {
		t.Errorf("Expected segment from y=760 to y=40, got y=%.2f and y=%.2f", p0.Y, p1.Y)
	}

	marker := art.Primitives[1]
	if marker.Kind != model.KindCircle {
		t.Errorf("Expected masculine marker to be a circle, got %s", marker.Kind)
	}
	if marker.Radius != 9 {
		t.Errorf("Expected clamped marker radius 9 for N=1, got %.2f", marker.Radius)
	}
}

func TestEngine_SubtypeEncodingDiffers(t *testing.T) {
	e := testEngine(t)

	group := model.SurahGroup{
		Surah: 1,
		Tokens: []model.DemonstrativeToken{
			demoToken(1, 1, model.DeixisProximal, model.GenderMasculine, model.NumberSingular, 0, 0),
			demoToken(1, 5, model.DeixisDistal, model.GenderFeminine, model.NumberPlural, 0, 0),
		},
	}

	art, err := e.Layout(group)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(art.Primitives) != 4 {
		t.Fatalf("Expected 2 lines + 2 markers, got %d primitives", len(art.Primitives))
	}

	line1, marker1 := art.Primitives[0], art.Primitives[1]
	line2, marker2 := art.Primitives[2], art.Primitives[3]

	if line1.Stroke == line2.Stroke {
		t.Error("Expected different deixis to yield different stroke colors")
	}
	if line1.StrokeWidth == line2.StrokeWidth {
		t.Error("Expected different number to yield different stroke widths")
	}
	if marker1.Kind == marker2.Kind {
		t.Error("Expected different gender to yield different marker kinds")
	}
}

func TestEngine_PrimitivesStayOnCanvas(t *testing.T) {
	e := testEngine(t)

	// A long alternating walk must still normalize into the canvas
	tokens := make([]model.DemonstrativeToken, 200)
	for i := range tokens {
		spatial := i%3 - 1
		temporal := (i/3)%3 - 1
		tokens[i] = demoToken(i/5+1, i%5+1, model.DeixisProximal, model.GenderMasculine, model.NumberSingular, spatial, temporal)
	}

	art, err := e.Layout(model.SurahGroup{Surah: 2, Tokens: tokens})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	for _, prim := range art.Primitives {
		for _, p := range prim.Points {
			if p.X < 0 || p.X > float64(art.Width) || p.Y < 0 || p.Y > float64(art.Height) {
				t.Fatalf("Point (%.2f, %.2f) outside %dx%d canvas", p.X, p.Y, art.Width, art.Height)
			}
		}
	}
}

func TestEngine_MarkerRadiusScaling(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{1, 9},   // clamped high
		{16, 6},  // 24/sqrt(16)
		{100, 3}, // clamped low at 24/10 → 3
	}
	for _, tt := range tests {
		got := markerRadius(tt.n)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("markerRadius(%d): expected %.2f, got %.2f", tt.n, tt.want, got)
		}
	}
}

func TestEngine_ValidateRejectsUnknownSubtype(t *testing.T) {
	e := testEngine(t)

	bad := demoToken(1, 1, "medial", model.GenderMasculine, model.NumberSingular, 0, 0)
	if err := e.Validate([]model.DemonstrativeToken{bad}); err == nil {
		t.Error("Expected validation error for unmapped deixis, got nil")
	}

	good := demoToken(1, 1, model.DeixisProximal, model.GenderMasculine, model.NumberSingular, 0, 0)
	if err := e.Validate([]model.DemonstrativeToken{good}); err != nil {
		t.Errorf("Expected no error for mapped subtypes, got %v", err)
	}
}
