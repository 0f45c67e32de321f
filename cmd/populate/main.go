// Command populate extracts the lexical graph from a Wiktionary dump
// database and writes it to PostgreSQL. It is intended to be run offline,
// not as part of the main server.
//
// Flags:
//
//	--dump          path to the dump sqlite file (overrides config)
//	--max-articles  bound the number of articles read (0 = all)
//	--dry-run       parse and link without writing to DB
//	--phase         comma-separated list of phases to run (default: all)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/flont-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flont-backend/internal/adapter/postgres/graph"
	"github.com/heartmarshall/flont-backend/internal/adapter/sqlite/articlestore"
	"github.com/heartmarshall/flont-backend/internal/app"
	"github.com/heartmarshall/flont-backend/internal/app/populate"
	"github.com/heartmarshall/flont-backend/internal/config"
	"github.com/heartmarshall/flont-backend/internal/domain"
)

// Compile-time interface assertions.
var (
	_ populate.ArticleSource = (*articlestore.Store)(nil)
	_ populate.GraphStore    = (*graph.Repo)(nil)
)

func main() {
	dumpFlag := flag.String("dump", "", "path to the dump sqlite file (overrides config)")
	maxArticlesFlag := flag.Int("max-articles", -1, "bound the number of articles read (0 = all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse and link without writing to DB")
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	flag.Parse()

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// CLI flags override config.
	if *dumpFlag != "" {
		cfg.Dump.Path = *dumpFlag
	}
	if *maxArticlesFlag >= 0 {
		cfg.Pipeline.MaxArticles = *maxArticlesFlag
	}
	if *dryRunFlag {
		cfg.Pipeline.DryRun = true
	}

	// Full-dump runs take a while; bound them anyway.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	source, err := articlestore.Open(cfg.Dump.Path)
	if err != nil {
		logger.Error("open dump", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer source.Close()

	var store populate.GraphStore
	if cfg.Pipeline.DryRun {
		store = noopStore{}
	} else {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()
		store = graph.New(pool)
	}

	pipeline := populate.NewPipeline(logger, source, store, cfg.Pipeline)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}

// noopStore lets dry runs proceed without a database connection. The write
// phase skips itself before touching the store, so none of these are
// reachable; the type only satisfies the pipeline contract.
type noopStore struct{}

func (noopStore) BulkDeclareNodes(context.Context, []domain.Node) (int, error) { return 0, nil }

func (noopStore) BulkSetDataProperties(context.Context, []domain.DataProperty) (int, error) {
	return 0, nil
}

func (noopStore) BulkSetObjectProperties(context.Context, []domain.ObjectProperty) (int, error) {
	return 0, nil
}

func (noopStore) Save(context.Context) error { return nil }
