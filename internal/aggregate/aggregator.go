// Package aggregate partitions classified demonstrative tokens into
// per-surah ordered sequences.
package aggregate

import (
	"sort"

	"github.com/Suphian/quran-art/internal/model"
)

// Result holds the per-surah grouping plus ordering diagnostics
type Result struct {
	// Groups is ascending by surah number; every group has at least one token.
	Groups []model.SurahGroup

	// Resorted counts tokens found out of (verse, word) order. The corpus is
	// expected to be ordered already; a non-zero count means the input was
	// explicitly re-sorted rather than silently accepted.
	Resorted int
}

// Aggregator groups tokens by surah, preserving input order
type Aggregator struct{}

// NewAggregator creates a new aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Group consumes the full classified sequence and partitions it by surah.
// Grouping is stable; ordinals are assigned after ordering is verified, so
// downstream layout always sees a (verse, word) monotone sequence.
func (a *Aggregator) Group(tokens []model.DemonstrativeToken) *Result {
	bySurah := make(map[int][]model.DemonstrativeToken)
	var surahs []int
	for _, tok := range tokens {
		if _, seen := bySurah[tok.Surah]; !seen {
			surahs = append(surahs, tok.Surah)
		}
		bySurah[tok.Surah] = append(bySurah[tok.Surah], tok)
	}
	sort.Ints(surahs)

	result := &Result{}
	for _, surah := range surahs {
		seq := bySurah[surah]

		disorder := countDisorder(seq)
		if disorder > 0 {
			result.Resorted += disorder
			sort.SliceStable(seq, func(i, j int) bool {
				if seq[i].Verse != seq[j].Verse {
					return seq[i].Verse < seq[j].Verse
				}
				return seq[i].Word < seq[j].Word
			})
		}

		for i := range seq {
			seq[i].Ordinal = i
		}

		result.Groups = append(result.Groups, model.SurahGroup{
			Surah:  surah,
			Tokens: seq,
		})
	}

	return result
}

// countDisorder counts adjacent (verse, word) inversions in a sequence
func countDisorder(seq []model.DemonstrativeToken) int {
	count := 0
	for i := 1; i < len(seq); i++ {
		prev, cur := seq[i-1], seq[i]
		if cur.Verse < prev.Verse || (cur.Verse == prev.Verse && cur.Word < prev.Word) {
			count++
		}
	}
	return count
}
