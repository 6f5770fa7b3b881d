// Package render serializes surah artworks to SVG, rasterizes them to PNG
// and assembles the gallery document.
package render

import (
	"bytes"
	"fmt"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/Suphian/quran-art/internal/model"
)

// SVG serializes an artwork to SVG bytes. Coordinates are snapped to the
// integer pixel grid of the canvas, which keeps the output byte-stable for
// identical input.
func SVG(art *model.SurahArtwork) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(art.Width, art.Height)

	for _, prim := range art.Primitives {
		switch prim.Kind {
		case model.KindLine:
			canvas.Line(
				px(prim.Points[0].X), px(prim.Points[0].Y),
				px(prim.Points[1].X), px(prim.Points[1].Y),
				fmt.Sprintf("stroke:%s;stroke-width:%.2f;stroke-linecap:round;fill:none", prim.Stroke, prim.StrokeWidth),
			)
		case model.KindCircle:
			canvas.Circle(
				px(prim.Points[0].X), px(prim.Points[0].Y), px(prim.Radius),
				fmt.Sprintf("fill:%s;stroke:none", prim.Fill),
			)
		case model.KindPolygon:
			xs := make([]int, len(prim.Points))
			ys := make([]int, len(prim.Points))
			for i, p := range prim.Points {
				xs[i] = px(p.X)
				ys[i] = px(p.Y)
			}
			canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:none", prim.Fill))
		}
	}

	canvas.End()
	return buf.Bytes()
}

// WriteSVG serializes the artwork and writes it to path
func WriteSVG(path string, art *model.SurahArtwork) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close svg: %w", closeErr)
		}
	}()

	if _, err = f.Write(SVG(art)); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func px(v float64) int {
	return int(math.Round(v))
}
