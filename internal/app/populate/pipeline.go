package populate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/flont-backend/internal/article"
	"github.com/heartmarshall/flont-backend/internal/config"
	"github.com/heartmarshall/flont-backend/internal/domain"
	"github.com/heartmarshall/flont-backend/internal/linker"
)

// allPhases defines the canonical execution order. Extraction must complete
// before linking, since cross-references may point at any article; linking
// must complete before writing so the edge set is final.
var allPhases = []string{"extract", "link", "write"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Stats summarizes what the extract phase produced.
type Stats struct {
	Articles    int // articles read from the dump
	Unparseable int // articles without a usable language section
	Literals    int // literals inserted into the index
	Entries     int // lexical entries across all literals
	Senses      int // word senses across all entries
}

// Pipeline orchestrates the 3-phase extraction process.
type Pipeline struct {
	log     *slog.Logger
	source  ArticleSource
	store   GraphStore
	cfg     config.PipelineConfig
	results map[string]PhaseResult
	stats   Stats

	parser *article.Parser
	index  *linker.Index
	edges  []domain.ObjectProperty
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, source ArticleSource, store GraphStore, cfg config.PipelineConfig) *Pipeline {
	return &Pipeline{
		log:     log,
		source:  source,
		store:   store,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
		parser:  article.NewParser(log),
		index:   linker.NewIndex(log),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Stats returns the extraction summary after the extract phase ran.
func (p *Pipeline) Stats() Stats {
	return p.stats
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline phases in order. If phases is non-empty, only
// the listed phases run; order still follows allPhases. A phase returning
// Err aborts the run: later phases depend on its output.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "extract":
			result = p.runExtract(ctx)
		case "link":
			result = p.runLink()
		case "write":
			result = p.runWrite(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Error("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("phase %s: %w", phase, result.Err)
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Int("errors", result.Errors),
			slog.Duration("duration", result.Duration),
		)
		if phase == "extract" {
			p.log.Info("extraction summary",
				slog.Int("articles", p.stats.Articles),
				slog.Int("unparseable", p.stats.Unparseable),
				slog.Int("literals", p.stats.Literals),
				slog.Int("entries", p.stats.Entries),
				slog.Int("senses", p.stats.Senses),
			)
		}
	}
	return nil
}

// runExtract parses every dump article into a literal and registers it in
// the label index. Articles without a usable language section are counted
// as skipped, not failed.
func (p *Pipeline) runExtract(ctx context.Context) PhaseResult {
	var result PhaseResult

	total, err := p.source.Count(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("count articles: %w", err)}
	}
	p.log.Info("dump opened", slog.Int("articles", total))

	err = p.source.Iterate(ctx, p.cfg.MaxArticles, func(title, content string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.stats.Articles++
		literal, err := p.parser.ParseArticle(title, content)
		if err != nil {
			if errors.Is(err, domain.ErrUnparseable) {
				result.Skipped++
				p.stats.Unparseable++
				return nil
			}
			result.Errors++
			p.log.Warn("article rejected",
				slog.String("title", title),
				slog.String("error", err.Error()),
			)
			return nil
		}
		p.index.Add(literal)
		result.Inserted++
		p.stats.Literals++
		p.stats.Entries += len(literal.Entries)
		for _, e := range literal.Entries {
			p.stats.Senses += len(e.Senses)
		}
		return nil
	})
	if err != nil {
		result.Err = fmt.Errorf("iterate dump: %w", err)
	}
	return result
}

// runLink resolves cross-reference targets against the index. Unresolvable
// targets are counted as skipped.
func (p *Pipeline) runLink() PhaseResult {
	p.edges = p.index.Resolve()
	return PhaseResult{
		Inserted: p.index.Resolved(),
		Skipped:  p.index.Dropped(),
	}
}

// runWrite flattens every literal and bulk-inserts the records. Ownership
// edges are written together with the resolved cross-reference edges, after
// all nodes are declared.
func (p *Pipeline) runWrite(ctx context.Context) PhaseResult {
	var records domain.GraphRecords
	for _, literal := range p.index.Literals() {
		records.Flatten(literal)
	}
	records.Objects = append(records.Objects, p.edges...)

	if p.cfg.DryRun {
		p.log.Info("dry run, skipping write",
			slog.Int("nodes", len(records.Nodes)),
			slog.Int("data_properties", len(records.Data)),
			slog.Int("object_properties", len(records.Objects)),
		)
		return PhaseResult{Skipped: len(records.Nodes)}
	}

	var result PhaseResult

	inserted, err := batchProcess(records.Nodes, p.cfg.BatchSize, func(batch []domain.Node) (int, error) {
		return p.store.BulkDeclareNodes(ctx, batch)
	})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("declare nodes: %w", err)}
	}
	result.Inserted += inserted

	inserted, err = batchProcess(records.Data, p.cfg.BatchSize, func(batch []domain.DataProperty) (int, error) {
		return p.store.BulkSetDataProperties(ctx, batch)
	})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("set data properties: %w", err)}
	}
	result.Inserted += inserted

	inserted, err = batchProcess(records.Objects, p.cfg.BatchSize, func(batch []domain.ObjectProperty) (int, error) {
		return p.store.BulkSetObjectProperties(ctx, batch)
	})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("set object properties: %w", err)}
	}
	result.Inserted += inserted

	if err := p.store.Save(ctx); err != nil {
		return PhaseResult{Err: fmt.Errorf("save graph: %w", err)}
	}
	return result
}

// batchProcess splits items into batches and sums the processed counts.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
