package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"deal_factory/internal/config"
	"deal_factory/internal/domain/entity"
	"deal_factory/internal/domain/service/property"
	"deal_factory/internal/infrastructure/listing"
	"deal_factory/internal/infrastructure/persistence"
	"deal_factory/pkg/application/connectors"
	"deal_factory/pkg/contextx"
	"deal_factory/pkg/logx"
)

// go run ./cmd/rescore --top 10 --min-score 60
// go run ./cmd/rescore --scrape

func main() {
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.DateTime,
	}))
	slog.SetDefault(log)

	if err := rootCmd().Execute(); err != nil {
		log.Error("rescore failed", logx.Error(err))
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rescore",
		Short:         "Re-score every stored property and print the top deals",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ctx = contextx.WithLogger(ctx, slog.Default())

			top, _ := cmd.Flags().GetInt("top")
			minScore, _ := cmd.Flags().GetInt("min-score")
			scrape, _ := cmd.Flags().GetBool("scrape")

			return run(ctx, top, minScore, scrape)
		},
	}

	cmd.Flags().Int("top", 5, "number of deals to print")
	cmd.Flags().Int("min-score", 0, "print only deals scoring at least this value")
	cmd.Flags().Bool("scrape", false, "insert sample listings before scoring")

	return cmd
}

func run(ctx context.Context, top, minScore int, scrape bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	svc := property.NewService(persistence.NewPropertyRepository(db), listing.NewSampleSource(nil), nil, nil)

	if scrape {
		added, err := svc.Scrape(ctx)
		if err != nil {
			return fmt.Errorf("svc.Scrape: %w", err)
		}
		slog.InfoContext(ctx, "sample listings added", slog.Int(logx.FieldCount, added))
	}

	result, err := svc.AnalyzeAll(ctx)
	if err != nil {
		return fmt.Errorf("svc.AnalyzeAll: %w", err)
	}
	slog.InfoContext(ctx, "properties re-scored", slog.Int(logx.FieldCount, result.Analyzed))

	deals, err := svc.List(ctx, entity.PropertyFilter{MinScore: &minScore, Limit: top})
	if err != nil {
		return fmt.Errorf("svc.List: %w", err)
	}

	printDeals(deals)

	return nil
}

func printDeals(deals []entity.Property) {
	p := message.NewPrinter(language.English)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0) //nolint:mnd

	_, _ = fmt.Fprintln(w, "SCORE\tVERDICT\tPRICE\tUNITS\tCASH FLOW\tADDRESS")
	for _, d := range deals {
		_, _ = p.Fprintf(w, "%d\t%s\t$%d\t%d\t$%d/mo\t%s\n",
			d.Score(),
			d.Analysis.Verdict,
			int64(d.Price),
			d.Units,
			int64(d.Analysis.MonthlyCashFlow),
			d.Address,
		)
	}

	_ = w.Flush()
}
