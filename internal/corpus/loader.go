package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Suphian/quran-art/internal/model"
)

// Column alias tables. The upstream corpus has shipped under several header
// spellings; the loader accepts any of them. Order within a list is the
// detection priority.
var (
	surahAliases    = []string{"sura", "surah", "chapter"}
	verseAliases    = []string{"ayah", "verse"}
	wordAliases     = []string{"word", "position", "token"}
	tagAliases      = []string{"pos", "tag", "pos_tag"}
	featuresAliases = []string{"feat", "features", "morph"}
	formAliases     = []string{"form", "surface", "text"}
	idAliases       = []string{"token_id", "id", "index"}
	headAliases     = []string{"head", "parent", "dep_parent", "link"}
)

// SkippedRow records one rejected data row with enough context to fix it
type SkippedRow struct {
	Line   int    // 1-based line number in the input
	Raw    string // Raw row content
	Reason string
}

// LoadResult contains the parsed corpus and the per-row skip accounting
type LoadResult struct {
	Records []model.TokenRecord
	Skipped []SkippedRow
}

// Loader reads the tab-separated QAC morphology table
type Loader struct{}

// NewLoader creates a new corpus loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFile reads and parses the corpus at path
func (l *Loader) LoadFile(path string) (result *LoadResult, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close corpus: %w", closeErr)
		}
	}()

	return l.Load(f)
}

// Load parses the corpus from r. The first line must be a tab-separated
// header; a missing required column is fatal. Rows with unparseable numeric
// fields are skipped and reported, never fatal.
func (l *Loader) Load(r io.Reader) (*LoadResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, fmt.Errorf("empty corpus: no header row")
	}

	header := splitRow(scanner.Text())
	cols, err := detectColumns(header)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{}
	line := 1
	for scanner.Scan() {
		line++
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}

		fields := splitRow(raw)
		rec, reason := cols.parse(fields)
		if reason != "" {
			result.Skipped = append(result.Skipped, SkippedRow{Line: line, Raw: raw, Reason: reason})
			continue
		}

		rec.GlobalIndex = len(result.Records)
		if rec.ID == "" {
			rec.ID = strconv.Itoa(rec.GlobalIndex)
		}
		result.Records = append(result.Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	return result, nil
}

// columns holds resolved header indices; optional columns are -1 when absent
type columns struct {
	surah    int
	verse    int
	word     int
	tag      int
	features int
	form     int
	id       int
	head     int
}

func detectColumns(header []string) (*columns, error) {
	lookup := make(map[string]int, len(header))
	for i, name := range header {
		lookup[strings.ToLower(strings.TrimSpace(name))] = i
	}

	find := func(aliases []string) int {
		for _, a := range aliases {
			if idx, ok := lookup[a]; ok {
				return idx
			}
		}
		return -1
	}

	cols := &columns{
		surah:    find(surahAliases),
		verse:    find(verseAliases),
		word:     find(wordAliases),
		tag:      find(tagAliases),
		features: find(featuresAliases),
		form:     find(formAliases),
		id:       find(idAliases),
		head:     find(headAliases),
	}

	required := []struct {
		idx     int
		aliases []string
	}{
		{cols.surah, surahAliases},
		{cols.verse, verseAliases},
		{cols.word, wordAliases},
		{cols.tag, tagAliases},
		{cols.features, featuresAliases},
		{cols.form, formAliases},
	}
	for _, req := range required {
		if req.idx < 0 {
			return nil, fmt.Errorf("missing required column: none of %v found in header %v", req.aliases, header)
		}
	}

	return cols, nil
}

// parse converts one split row into a TokenRecord. A non-empty reason marks
// the row as skipped.
func (c *columns) parse(fields []string) (model.TokenRecord, string) {
	var rec model.TokenRecord

	max := c.surah
	for _, idx := range []int{c.verse, c.word, c.tag, c.features, c.form} {
		if idx > max {
			max = idx
		}
	}
	if len(fields) <= max {
		return rec, fmt.Sprintf("expected at least %d fields, got %d", max+1, len(fields))
	}

	surah, err := strconv.Atoi(strings.TrimSpace(fields[c.surah]))
	if err != nil {
		return rec, fmt.Sprintf("unparseable surah %q", fields[c.surah])
	}
	if surah < 1 || surah > model.SurahCount {
		return rec, fmt.Sprintf("surah %d out of range 1..%d", surah, model.SurahCount)
	}

	verse, err := strconv.Atoi(strings.TrimSpace(fields[c.verse]))
	if err != nil {
		return rec, fmt.Sprintf("unparseable verse %q", fields[c.verse])
	}

	word, err := strconv.Atoi(strings.TrimSpace(fields[c.word]))
	if err != nil {
		return rec, fmt.Sprintf("unparseable word position %q", fields[c.word])
	}

	rec.Surah = surah
	rec.Verse = verse
	rec.Word = word
	rec.Tag = strings.TrimSpace(fields[c.tag])
	rec.Features = strings.TrimSpace(fields[c.features])
	rec.Form = strings.TrimSpace(fields[c.form])
	if c.id >= 0 && c.id < len(fields) {
		rec.ID = strings.TrimSpace(fields[c.id])
	}
	if c.head >= 0 && c.head < len(fields) {
		rec.Head = strings.TrimSpace(fields[c.head])
	}

	return rec, ""
}

func splitRow(line string) []string {
	return strings.Split(strings.TrimRight(line, "\r\n"), "\t")
}
