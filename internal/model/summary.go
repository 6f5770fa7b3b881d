package model

// RunSummary is the end-of-run accounting. Nothing skipped during a run is
// dropped silently; every skip lands in one of these counters.
type RunSummary struct {
	RowsTotal      int `json:"rows_total"`      // Data rows read from the corpus
	RowsSkipped    int `json:"rows_skipped"`    // Rows with unparseable numeric fields
	TokensFound    int `json:"tokens_found"`    // Demonstrative tokens classified
	TokensResorted int `json:"tokens_resorted"` // Tokens found out of (verse, word) order
	SurahsRendered int `json:"surahs_rendered"` // Surahs with at least one token
	SurahsSkipped  int `json:"surahs_skipped"`  // Surahs present in the corpus with zero demonstratives
}
