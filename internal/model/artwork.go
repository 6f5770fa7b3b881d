package model

// PrimitiveKind enumerates the drawable shapes the layout engine emits
type PrimitiveKind string

const (
	KindLine    PrimitiveKind = "line"
	KindCircle  PrimitiveKind = "circle"
	KindPolygon PrimitiveKind = "polygon"
)

// Point is a 2D canvas coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GeometricPrimitive is one drawable shape. For KindLine, Points holds the
// two endpoints; for KindPolygon, the vertex ring; for KindCircle, the
// center (with Radius set).
type GeometricPrimitive struct {
	Kind        PrimitiveKind `json:"kind"`
	Points      []Point       `json:"points"`
	Radius      float64       `json:"radius,omitempty"`
	StrokeWidth float64       `json:"stroke_width,omitempty"`
	Stroke      string        `json:"stroke,omitempty"`
	Fill        string        `json:"fill,omitempty"`
}

// SurahArtwork is the complete geometry for one surah's visualization
type SurahArtwork struct {
	Surah      int                  `json:"surah"`
	Width      int                  `json:"width"`
	Height     int                  `json:"height"`
	Primitives []GeometricPrimitive `json:"primitives"`
}
