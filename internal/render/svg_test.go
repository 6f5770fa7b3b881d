package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Suphian/quran-art/internal/model"
)

func twoTokenArtwork() *model.SurahArtwork {
	return &model.SurahArtwork{
		Surah:  1,
		Width:  800,
		Height: 800,
		Primitives: []model.GeometricPrimitive{
			{
				Kind:        model.KindLine,
				Points:      []model.Point{{X: 100, Y: 700}, {X: 100, Y: 500}},
				StrokeWidth: 1.8,
				Stroke:      "#111111",
			},
			{
				Kind:   model.KindCircle,
				Points: []model.Point{{X: 100, Y: 500}},
				Radius: 6,
				Fill:   "#111111",
			},
			{
				Kind:        model.KindLine,
				Points:      []model.Point{{X: 100, Y: 500}, {X: 300, Y: 500}},
				StrokeWidth: 4.2,
				Stroke:      "#5b21b6",
			},
			{
				Kind: model.KindPolygon,
				Points: []model.Point{
					{X: 300, Y: 494}, {X: 306, Y: 500}, {X: 300, Y: 506}, {X: 294, Y: 500},
				},
				Fill: "#5b21b6",
			},
		},
	}
}

func TestSVG_EncodesPrimitives(t *testing.T) {
	out := string(SVG(twoTokenArtwork()))

	if !strings.Contains(out, `width="800"`) || !strings.Contains(out, `height="800"`) {
		t.Error("Expected canvas dimensions in SVG output")
	}
	if got := strings.Count(out, "<line"); got != 2 {
		t.Errorf("Expected 2 line elements, got %d", got)
	}
	if got := strings.Count(out, "<circle"); got != 1 {
		t.Errorf("Expected 1 circle element, got %d", got)
	}
	if got := strings.Count(out, "<polygon"); got != 1 {
		t.Errorf("Expected 1 polygon element, got %d", got)
	}

	// The two tokens carry different visual attributes
	if !strings.Contains(out, "stroke:#111111;stroke-width:1.80") {
		t.Error("Expected first stroke style in output")
	}
	if !strings.Contains(out, "stroke:#5b21b6;stroke-width:4.20") {
		t.Error("Expected second stroke style in output")
	}
}

func TestSVG_Deterministic(t *testing.T) {
	art := twoTokenArtwork()
	if !bytes.Equal(SVG(art), SVG(art)) {
		t.Error("Expected byte-identical SVG output for identical artwork")
	}
}

func TestSVG_SnapsFractionalCoordinates(t *testing.T) {
	art := &model.SurahArtwork{
		Surah:  1,
		Width:  800,
		Height: 800,
		Primitives: []model.GeometricPrimitive{
			{
				Kind:        model.KindLine,
				Points:      []model.Point{{X: 99.6, Y: 700.4}, {X: 100.49, Y: 499.5}},
				StrokeWidth: 1,
				Stroke:      "#111111",
			},
		},
	}

	out := string(SVG(art))
	if !strings.Contains(out, `x1="100"`) || !strings.Contains(out, `y1="700"`) {
		t.Errorf("Expected rounded start coordinates, got:\n%s", out)
	}
	if !strings.Contains(out, `x2="100"`) || !strings.Contains(out, `y2="500"`) {
		t.Errorf("Expected rounded end coordinates, got:\n%s", out)
	}
}

func TestWriteSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "001.svg")
	if err := WriteSVG(path, twoTokenArtwork()); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected SVG file, got %v", err)
	}
	if !bytes.Equal(data, SVG(twoTokenArtwork())) {
		t.Error("Expected file content to match in-memory serialization")
	}
}
