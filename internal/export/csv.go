// Package export writes the filtered token list to a flat tabular file.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Suphian/quran-art/internal/model"
)

var csvHeader = []string{"surah", "verse", "word", "form", "deixis", "gender", "number"}

// WriteCSV writes one row per demonstrative token, in corpus order. The file
// is a pure projection of already-classified fields; no layout data appears.
func WriteCSV(path string, tokens []model.DemonstrativeToken) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close csv: %w", closeErr)
		}
	}()

	w := csv.NewWriter(f)
	if err = w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, tok := range tokens {
		row := []string{
			strconv.Itoa(tok.Surah),
			strconv.Itoa(tok.Verse),
			strconv.Itoa(tok.Word),
			tok.Form,
			string(tok.Deixis),
			string(tok.Gender),
			string(tok.Number),
		}
		if err = w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
