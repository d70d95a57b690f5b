package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/remedia-ai/remedia/internal/config"
	"github.com/remedia-ai/remedia/internal/repository"
	"github.com/remedia-ai/remedia/internal/service"
	"github.com/spf13/cobra"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print vector index statistics",
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	remedyRepo := repository.NewRemedyRepository(pool)
	statsSvc := service.NewStatsService(remedyRepo, cfg.IndexName, cfg.EmbeddingDimensions)

	stats := statsSvc.Stats(ctx)

	fmt.Printf("index:          %s\n", stats.IndexName)
	fmt.Printf("status:         %s\n", stats.Status)
	fmt.Printf("total remedies: %d\n", stats.TotalRemedies)
	fmt.Printf("dimension:      %d\n", stats.Dimension)
	fmt.Printf("metric:         %s\n", stats.Metric)

	if stats.Status != service.StatusActive {
		return fmt.Errorf("index %q is %s", stats.IndexName, stats.Status)
	}
	return nil
}
