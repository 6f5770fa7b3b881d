package model

import "time"

// Config is the complete quran-art configuration.
// All classification rules and visual encodings live here so that both the
// classifier and the layout engine receive explicit immutable tables at
// construction time instead of reading ambient state.
type Config struct {
	Dataset    DatasetConfig    `yaml:"dataset"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Layout     LayoutConfig     `yaml:"layout"`
	Output     OutputConfig     `yaml:"output"`
	HTTP       HTTPConfig       `yaml:"http"`
	Cache      CacheConfig      `yaml:"cache"`
}

// DatasetConfig describes where the corpus lives and how to obtain it
type DatasetConfig struct {
	Path      string   `yaml:"path"`       // Local TSV path
	Mirrors   []string `yaml:"mirrors"`    // Download URLs, tried in order
	AutoFetch bool     `yaml:"auto_fetch"` // Download when Path is missing
}

// ClassifierConfig holds the recognized-tag set and feature-code tables.
// Patterns and codes are matched against the corpus columns verbatim; new
// tag variants are added here, never in classifier logic.
type ClassifierConfig struct {
	TagPatterns   []string `yaml:"tag_patterns"`   // POS substrings marking demonstratives
	FeminineCodes []string `yaml:"feminine_codes"` // Feature codes marking feminine gender
	DualCodes     []string `yaml:"dual_codes"`     // Feature codes marking dual number
	PluralCodes   []string `yaml:"plural_codes"`   // Feature codes marking plural number
	PerfectTags   []string `yaml:"perfect_tags"`   // Verb feature codes counted as past reference
	ImperfectTags []string `yaml:"imperfect_tags"` // Verb feature codes counted as non-past reference
	ContextWindow int      `yaml:"context_window"` // Tokens scanned each side for the temporal axis
}

// TurnRule maps one (spatial, temporal) axis pair to a heading change
type TurnRule struct {
	Spatial  int     `yaml:"spatial"`
	Temporal int     `yaml:"temporal"`
	Degrees  float64 `yaml:"degrees"`
}

// LayoutConfig holds canvas geometry and the subtype→visual encoding tables.
// Every enumerated subtype value must have an entry; a missing entry is a
// configuration error detected before any output is written.
type LayoutConfig struct {
	CanvasSize     int     `yaml:"canvas_size"`     // Square canvas edge in px
	Margin         float64 `yaml:"margin"`          // Blank border in px
	InitialHeading float64 `yaml:"initial_heading"` // Walk start direction in degrees

	Turns []TurnRule `yaml:"turns"` // (spatial, temporal) → heading change

	StrokeUnit   float64            `yaml:"stroke_unit"`   // px multiplier for stroke widths
	StrokeWidths map[Number]float64 `yaml:"stroke_widths"` // grammatical number → relative width
	StrokeColors map[Deixis]string  `yaml:"stroke_colors"` // deixis → hex color
	MarkerShapes map[Gender]string  `yaml:"marker_shapes"` // gender → "circle" or "diamond"
}

// OutputConfig controls output placement and verbosity
type OutputConfig struct {
	Dir     string `yaml:"dir"`      // Output directory root
	PNGSize int    `yaml:"png_size"` // Raster edge in px
	Verbose bool   `yaml:"verbose"`
}

// HTTPConfig configures the corpus downloader
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

// CacheConfig configures caching of downloaded corpus bytes
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path: "data/qac-with-id.tsv",
			Mirrors: []string{
				"https://raw.githubusercontent.com/zer0n13/qac-1.0/master/qac-with-id.tsv",
				"https://raw.githubusercontent.com/tanzilnet/quran-morphology/master/qac-with-id.tsv",
			},
			AutoFetch: true,
		},
		Classifier: ClassifierConfig{
			TagPatterns:   []string{"DM"},
			FeminineCodes: []string{"F", "FS", "FD", "FP"},
			DualCodes:     []string{"MD", "FD", "2D", "DUAL"},
			PluralCodes:   []string{"MP", "FP", "P", "PL", "PLUR"},
			PerfectTags:   []string{"PERF"},
			ImperfectTags: []string{"IMPF", "JUS", "IMPV"},
			ContextWindow: 3,
		},
		Layout: LayoutConfig{
			CanvasSize:     800,
			Margin:         40,
			InitialHeading: 90,
			Turns: []TurnRule{
				{Spatial: -1, Temporal: -1, Degrees: -60},
				{Spatial: -1, Temporal: 0, Degrees: -30},
				{Spatial: -1, Temporal: 1, Degrees: 0},
				{Spatial: 0, Temporal: -1, Degrees: -15},
				{Spatial: 0, Temporal: 0, Degrees: 0},
				{Spatial: 0, Temporal: 1, Degrees: 15},
				{Spatial: 1, Temporal: -1, Degrees: 30},
				{Spatial: 1, Temporal: 0, Degrees: 60},
				{Spatial: 1, Temporal: 1, Degrees: 90},
			},
			StrokeUnit: 3,
			StrokeWidths: map[Number]float64{
				NumberSingular: 0.6,
				NumberDual:     1.0,
				NumberPlural:   1.4,
			},
			StrokeColors: map[Deixis]string{
				DeixisProximal: "#111111",
				DeixisDistal:   "#5b21b6",
			},
			MarkerShapes: map[Gender]string{
				GenderMasculine: "circle",
				GenderFeminine:  "diamond",
			},
		},
		Output: OutputConfig{
			Dir:     "output",
			PNGSize: 800,
		},
		HTTP: HTTPConfig{
			Timeout:           30 * time.Second,
			UserAgent:         "quran-art/0.1 (+https://github.com/Suphian/quran-art)",
			MaxBodyBytes:      50_000_000,
			RequestsPerSecond: 1,
			Burst:             2,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".quran-art-cache",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   7 * 24 * time.Hour,
		},
	}
}
