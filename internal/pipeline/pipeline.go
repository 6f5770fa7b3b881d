// Package pipeline orchestrates the complete generation run:
// load → classify → aggregate → layout → render → export.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Suphian/quran-art/internal/aggregate"
	"github.com/Suphian/quran-art/internal/classify"
	"github.com/Suphian/quran-art/internal/corpus"
	"github.com/Suphian/quran-art/internal/export"
	"github.com/Suphian/quran-art/internal/layout"
	"github.com/Suphian/quran-art/internal/model"
	"github.com/Suphian/quran-art/internal/render"
)

// Pipeline runs the full extract-transform-render sequence. All stages are
// sequential; each hands an immutable result to the next.
type Pipeline struct {
	loader     *corpus.Loader
	classifier *classify.Classifier
	aggregator *aggregate.Aggregator
	engine     *layout.Engine
	config     *model.Config
}

// NewPipeline creates a pipeline from the configuration. An incomplete
// visual encoding table fails here, before any file is touched.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	engine, err := layout.NewEngine(cfg.Layout)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		loader:     corpus.NewLoader(),
		classifier: classify.NewClassifier(cfg.Classifier),
		aggregator: aggregate.NewAggregator(),
		engine:     engine,
		config:     cfg,
	}, nil
}

// Run executes the pipeline once and returns the end-of-run summary
func (p *Pipeline) Run(ctx context.Context) (*model.RunSummary, error) {
	cfg := p.config
	verbose := cfg.Output.Verbose

	// 1. Obtain the corpus
	if _, err := os.Stat(cfg.Dataset.Path); os.IsNotExist(err) && cfg.Dataset.AutoFetch {
		if verbose {
			fmt.Fprintf(os.Stderr, "Dataset %s missing, downloading...\n", cfg.Dataset.Path)
		}
		fetcher := corpus.NewFetcher(cfg)
		if err := fetcher.Download(ctx, cfg.Dataset.Path); err != nil {
			return nil, fmt.Errorf("download corpus: %w", err)
		}
	}

	// 2. Load
	loaded, err := p.loader.LoadFile(cfg.Dataset.Path)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d rows (%d skipped)\n", len(loaded.Records), len(loaded.Skipped))
		for _, skip := range loaded.Skipped {
			fmt.Fprintf(os.Stderr, "  skipped line %d (%s): %s\n", skip.Line, skip.Reason, skip.Raw)
		}
	}

	surahsInCorpus := make(map[int]bool)
	for _, rec := range loaded.Records {
		surahsInCorpus[rec.Surah] = true
	}

	// 3. Classify
	tokens := p.classifier.Classify(loaded.Records)
	if verbose {
		fmt.Fprintf(os.Stderr, "Classified %d demonstrative tokens\n", len(tokens))
	}

	// 4. Aggregate per surah
	grouped := p.aggregator.Group(tokens)

	// 5. Verify the encoding covers every classified token before any
	// output exists on disk
	if err := p.engine.Validate(tokens); err != nil {
		return nil, err
	}

	// 6. Create the output tree
	svgDir := filepath.Join(cfg.Output.Dir, "svg")
	pngDir := filepath.Join(cfg.Output.Dir, "png")
	for _, dir := range []string{svgDir, pngDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	// 7. Export the filtered token list
	csvPath := filepath.Join(cfg.Output.Dir, "hada_tokens.csv")
	if err := export.WriteCSV(csvPath, tokens); err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote CSV: %s\n", csvPath)
	}

	// 8. Layout and render each surah
	artworks := make([]*model.SurahArtwork, 0, len(grouped.Groups))
	for _, group := range grouped.Groups {
		art, err := p.engine.Layout(group)
		if err != nil {
			return nil, err
		}
		if art == nil {
			continue
		}

		svgData := render.SVG(art)
		svgPath := filepath.Join(svgDir, fmt.Sprintf("%03d.svg", art.Surah))
		if err := os.WriteFile(svgPath, svgData, 0644); err != nil {
			return nil, fmt.Errorf("write svg: %w", err)
		}

		pngPath := filepath.Join(pngDir, fmt.Sprintf("%03d.png", art.Surah))
		if err := render.WritePNG(pngPath, svgData, cfg.Output.PNGSize); err != nil {
			return nil, err
		}

		artworks = append(artworks, art)
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Rendered surah %03d (%d tokens)\n", art.Surah, len(group.Tokens))
		}
	}

	// 9. Gallery
	galleryPath := filepath.Join(cfg.Output.Dir, "gallery.html")
	if err := render.WriteGallery(galleryPath, artworks); err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote gallery: %s\n", galleryPath)
	}

	return &model.RunSummary{
		RowsTotal:      len(loaded.Records) + len(loaded.Skipped),
		RowsSkipped:    len(loaded.Skipped),
		TokensFound:    len(tokens),
		TokensResorted: grouped.Resorted,
		SurahsRendered: len(artworks),
		SurahsSkipped:  len(surahsInCorpus) - len(artworks),
	}, nil
}
