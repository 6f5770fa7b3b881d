package pipeline

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Suphian/quran-art/internal/model"
)

const testCorpus = `sura	ayah	word	pos	feat	form
1	1	1	DM	STEM|POS:DM|MS	هَذَا
1	2	3	N	STEM|POS:N	كِتَابٌ
1	5	2	DM	STEM|POS:DM|FP	أُولَئِكَ
2	1	1	N	STEM|POS:N	الم
2	2	2	V	STEM|POS:V|PERF	قَالَ
x	9	9	DM	STEM|POS:DM|MS	هَذَا
`

func testConfig(t *testing.T) *model.Config {
	t.Helper()

	dir := t.TempDir()
	dataset := filepath.Join(dir, "qac.tsv")
	if err := os.WriteFile(dataset, []byte(testCorpus), 0644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	cfg := model.DefaultConfig()
	cfg.Dataset.Path = dataset
	cfg.Dataset.AutoFetch = false
	cfg.Output.Dir = filepath.Join(dir, "output")
	cfg.Output.PNGSize = 100
	cfg.Output.Verbose = false
	return cfg
}

func TestPipeline_EndToEnd(t *testing.T) {
	cfg := testConfig(t)

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	summary, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.RowsTotal != 6 {
		t.Errorf("Expected 6 total rows, got %d", summary.RowsTotal)
	}
	if summary.RowsSkipped != 1 {
		t.Errorf("Expected 1 skipped row, got %d", summary.RowsSkipped)
	}
	if summary.TokensFound != 2 {
		t.Errorf("Expected 2 demonstrative tokens, got %d", summary.TokensFound)
	}
	if summary.SurahsRendered != 1 {
		t.Errorf("Expected 1 rendered surah, got %d", summary.SurahsRendered)
	}
	if summary.SurahsSkipped != 1 {
		t.Errorf("Expected 1 skipped surah, got %d", summary.SurahsSkipped)
	}

	for _, rel := range []string{
		filepath.Join("svg", "001.svg"),
		filepath.Join("png", "001.png"),
		"gallery.html",
		"hada_tokens.csv",
	} {
		path := filepath.Join(cfg.Output.Dir, rel)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected output file %s: %v", rel, err)
		}
	}

	// Surah 2 has no demonstratives, so no artwork files exist for it
	if _, err := os.Stat(filepath.Join(cfg.Output.Dir, "svg", "002.svg")); !os.IsNotExist(err) {
		t.Error("Expected no SVG for surah without demonstratives")
	}
}

func TestPipeline_CSVContent(t *testing.T) {
	cfg := testConfig(t)

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	f, err := os.Open(filepath.Join(cfg.Output.Dir, "hada_tokens.csv"))
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d", len(rows))
	}

	first := rows[1]
	if first[0] != "1" || first[1] != "1" || first[2] != "1" || first[4] != "proximal" {
		t.Errorf("Unexpected first token row: %v", first)
	}
	second := rows[2]
	if second[1] != "5" || second[4] != "distal" || second[6] != "plural" {
		t.Errorf("Unexpected second token row: %v", second)
	}
}

func TestPipeline_Deterministic(t *testing.T) {
	run := func(t *testing.T) []byte {
		t.Helper()
		cfg := testConfig(t)
		p, err := NewPipeline(cfg)
		if err != nil {
			t.Fatalf("NewPipeline: %v", err)
		}
		if _, err := p.Run(context.Background()); err != nil {
			t.Fatalf("Run: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "svg", "001.svg"))
		if err != nil {
			t.Fatalf("read svg: %v", err)
		}
		return data
	}

	if string(run(t)) != string(run(t)) {
		t.Error("Expected byte-identical SVG across runs on identical input")
	}
}

func TestPipeline_MissingDataset(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dataset.Path = filepath.Join(t.TempDir(), "absent.tsv")

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	if _, err := p.Run(context.Background()); err == nil {
		t.Fatal("Expected error for missing dataset without auto-fetch, got nil")
	}
}

func TestPipeline_MissingColumnFatal(t *testing.T) {
	cfg := testConfig(t)
	if err := os.WriteFile(cfg.Dataset.Path, []byte("sura\tayah\tword\tfeat\tform\n1\t1\t1\tx\tx\n"), 0644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	_, err = p.Run(context.Background())
	if err == nil {
		t.Fatal("Expected error for corpus without a POS column, got nil")
	}
	if !strings.Contains(err.Error(), "column") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestPipeline_IncompleteEncodingFailsBeforeOutput(t *testing.T) {
	cfg := testConfig(t)
	delete(cfg.Layout.StrokeColors, model.DeixisDistal)

	if _, err := NewPipeline(cfg); err == nil {
		t.Fatal("Expected construction error for incomplete encoding, got nil")
	}
	if _, err := os.Stat(cfg.Output.Dir); !os.IsNotExist(err) {
		t.Error("Expected no output directory after construction failure")
	}
}
