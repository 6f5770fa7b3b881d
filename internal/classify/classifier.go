// Package classify identifies demonstrative tokens in the loaded corpus and
// derives their grammatical subtype and discourse-context axes.
package classify

import (
	"strings"

	"github.com/Suphian/quran-art/internal/model"
)

// Classifier matches morphological tags against a configured rule set.
// All tables are injected at construction; classification itself never
// errors on well-typed rows.
type Classifier struct {
	patterns  []string
	feminine  map[string]bool
	dual      map[string]bool
	plural    map[string]bool
	perfect   []string
	imperfect []string
	window    int
}

// NewClassifier creates a classifier from the configured tag tables
func NewClassifier(cfg model.ClassifierConfig) *Classifier {
	window := cfg.ContextWindow
	if window <= 0 {
		window = 3
	}
	return &Classifier{
		patterns:  cfg.TagPatterns,
		feminine:  codeSet(cfg.FeminineCodes),
		dual:      codeSet(cfg.DualCodes),
		plural:    codeSet(cfg.PluralCodes),
		perfect:   cfg.PerfectTags,
		imperfect: cfg.ImperfectTags,
		window:    window,
	}
}

// Classify walks the full corpus once and returns every demonstrative token
// in corpus order. The whole record slice is needed because the context axes
// look at neighbouring rows and dependency heads.
func (c *Classifier) Classify(records []model.TokenRecord) []model.DemonstrativeToken {
	idToIndex := make(map[string]int, len(records))
	for _, rec := range records {
		if rec.ID != "" {
			if _, seen := idToIndex[rec.ID]; !seen {
				idToIndex[rec.ID] = rec.GlobalIndex
			}
		}
	}

	var tokens []model.DemonstrativeToken
	for i, rec := range records {
		if !c.isDemonstrative(rec.Tag) {
			continue
		}

		tokens = append(tokens, model.DemonstrativeToken{
			TokenRecord: rec,
			Deixis:      deixisOf(rec.Form),
			Gender:      c.genderOf(rec.Features),
			Number:      c.numberOf(rec.Features),
			Spatial:     c.spatialAxis(rec, idToIndex),
			Temporal:    c.temporalAxis(records, i),
		})
	}
	return tokens
}

func (c *Classifier) isDemonstrative(tag string) bool {
	for _, p := range c.patterns {
		if strings.Contains(tag, p) {
			return true
		}
	}
	return false
}

// deixisOf reads the deictic distance off the surface form: QAC proximal
// demonstratives all carry the ha- prefix (هذا family), distal ones do not
// (ذلك، تلك، أولئك).
func deixisOf(form string) model.Deixis {
	for _, r := range form {
		if r == 'ه' {
			return model.DeixisProximal
		}
		break
	}
	return model.DeixisDistal
}

func (c *Classifier) genderOf(features string) model.Gender {
	for _, code := range featureCodes(features) {
		if c.feminine[code] {
			return model.GenderFeminine
		}
	}
	// QAC marks feminine explicitly; unmarked demonstratives are masculine
	return model.GenderMasculine
}

func (c *Classifier) numberOf(features string) model.Number {
	codes := featureCodes(features)
	for _, code := range codes {
		if c.dual[code] {
			return model.NumberDual
		}
	}
	for _, code := range codes {
		if c.plural[code] {
			return model.NumberPlural
		}
	}
	// Fallback for prose-style feature strings
	lower := strings.ToLower(features)
	if strings.Contains(lower, "dual") {
		return model.NumberDual
	}
	if strings.Contains(lower, "plur") {
		return model.NumberPlural
	}
	return model.NumberSingular
}

// spatialAxis compares the corpus position of the dependency head with the
// token's own: -1 when the head precedes, +1 when it follows, 0 when no
// head is resolvable.
func (c *Classifier) spatialAxis(rec model.TokenRecord, idToIndex map[string]int) int {
	if rec.Head == "" {
		return 0
	}
	headIdx, ok := idToIndex[rec.Head]
	if !ok {
		return 0
	}
	switch {
	case headIdx < rec.GlobalIndex:
		return -1
	case headIdx > rec.GlobalIndex:
		return 1
	default:
		return 0
	}
}

// temporalAxis scans outward from the token for the nearest verb within the
// context window: perfect aspect maps to -1 (past reference), imperfect,
// jussive and imperative to +1. Preceding tokens win ties.
func (c *Classifier) temporalAxis(records []model.TokenRecord, idx int) int {
	for d := 1; d <= c.window; d++ {
		for _, j := range []int{idx - d, idx + d} {
			if j < 0 || j >= len(records) {
				continue
			}
			if v := c.verbAspect(records[j]); v != 0 {
				return v
			}
		}
	}
	return 0
}

func (c *Classifier) verbAspect(rec model.TokenRecord) int {
	for _, tag := range c.perfect {
		if strings.Contains(rec.Features, tag) || strings.Contains(rec.Tag, tag) {
			return -1
		}
	}
	for _, tag := range c.imperfect {
		if strings.Contains(rec.Features, tag) || strings.Contains(rec.Tag, tag) {
			return 1
		}
	}
	return 0
}

// featureCodes splits a QAC feature string ("STEM|POS:DM|LEM:ذَا|MS") into
// its pipe-delimited codes, uppercased for table lookup.
func featureCodes(features string) []string {
	parts := strings.Split(features, "|")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		codes = append(codes, strings.ToUpper(strings.TrimSpace(p)))
	}
	return codes
}

func codeSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[strings.ToUpper(c)] = true
	}
	return set
}
