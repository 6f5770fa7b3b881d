package model

// TokenRecord is one row of the QAC morphology table.
type TokenRecord struct {
	Surah       int    `json:"surah"`                 // Chapter number (1..114)
	Verse       int    `json:"verse"`                 // Verse number within the surah
	Word        int    `json:"word"`                  // Word position within the verse
	Tag         string `json:"tag"`                   // POS tag (e.g., "DM" for demonstratives)
	Features    string `json:"features,omitempty"`    // Morphological feature string
	Form        string `json:"form"`                  // Surface form (Arabic text)
	ID          string `json:"id,omitempty"`          // Token identifier from the corpus
	Head        string `json:"head,omitempty"`        // Dependency head token identifier
	GlobalIndex int    `json:"global_index"`          // Row index in corpus order
}

// Deixis distinguishes near-reference from far-reference demonstratives
type Deixis string

const (
	DeixisProximal Deixis = "proximal" // "this" family (ha-initial forms)
	DeixisDistal   Deixis = "distal"   // "that" family
)

// Deixes enumerates every deixis value the classifier can produce
var Deixes = []Deixis{DeixisProximal, DeixisDistal}

// Gender is the grammatical gender of a demonstrative
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
)

// Genders enumerates every gender value the classifier can produce
var Genders = []Gender{GenderMasculine, GenderFeminine}

// Number is the grammatical number of a demonstrative
type Number string

const (
	NumberSingular Number = "singular"
	NumberDual     Number = "dual"
	NumberPlural   Number = "plural"
)

// Numbers enumerates every number value the classifier can produce
var Numbers = []Number{NumberSingular, NumberDual, NumberPlural}

// DemonstrativeToken is a TokenRecord confirmed to carry a demonstrative tag,
// augmented with its derived subtype and discourse-context axes.
type DemonstrativeToken struct {
	TokenRecord

	Deixis Deixis `json:"deixis"`
	Gender Gender `json:"gender"`
	Number Number `json:"number"`

	// Spatial is -1 when the dependency head precedes the token,
	// +1 when it follows, 0 when no head is resolvable.
	Spatial int `json:"spatial"`

	// Temporal is -1 when the nearest verb in the context window is
	// perfect, +1 when imperfect/jussive/imperative, 0 when none.
	Temporal int `json:"temporal"`

	// Ordinal is the zero-based rank within the surah's demonstrative
	// sequence, assigned by the aggregator.
	Ordinal int `json:"ordinal"`
}

// SurahGroup is the ordered demonstrative sequence of one surah,
// ordered by (verse, word position).
type SurahGroup struct {
	Surah  int                  `json:"surah"`
	Tokens []DemonstrativeToken `json:"tokens"`
}
