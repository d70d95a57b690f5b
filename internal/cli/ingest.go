package cli

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/remedia-ai/remedia/internal/chunker"
	"github.com/remedia-ai/remedia/internal/config"
	"github.com/remedia-ai/remedia/internal/repository"
	"github.com/remedia-ai/remedia/internal/service"
	"github.com/remedia-ai/remedia/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const verifyQuery = "headache with nausea and vomiting"

// IngestCmd returns the ingest command
func IngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest a remedy corpus into the vector index",
		Long:  "Chunk a remedy source document, embed each chunk, and upsert the vectors into the index. Re-running on the same source is idempotent.",
		RunE:  runIngest,
	}

	addSourceFlags(cmd.Flags())
	cmd.Flags().Bool("no-verify", false, "Skip the post-ingest verification query")

	return cmd
}

func addSourceFlags(fs *pflag.FlagSet) {
	fs.StringP("file", "f", "data/remedy_chunks.json", "Local source file (JSON chunks or free text)")
	fs.String("s3-key", "", "Fetch the source from the corpus bucket instead of a local file")
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !cfg.HasOpenAI() {
		return fmt.Errorf("REMEDIA_OPENAI_API_KEY is required for ingestion")
	}

	sourceName, data, err := readSource(ctx, cmd, cfg)
	if err != nil {
		return err
	}
	log.Printf("loaded source %s (%d bytes)", sourceName, len(data))

	splitter := chunker.ForSource(sourceName, chunker.Config{PreviewMaxChars: cfg.PreviewMaxChars})
	chunks, err := splitter.Split(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to chunk source: %w", err)
	}
	if len(chunks) == 0 {
		return fmt.Errorf("source %s produced no chunks", sourceName)
	}
	log.Printf("chunked source into %d remedy entries", len(chunks))

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	embeddingClient := newEmbeddingClient(cfg)
	remedyRepo := repository.NewRemedyRepository(pool)
	ingestSvc := service.NewIngestService(embeddingClient, remedyRepo)

	log.Printf("embedding and upserting %d chunks into %q...", len(chunks), cfg.IndexName)
	report, err := ingestSvc.Ingest(ctx, chunks)
	if err != nil {
		return fmt.Errorf("ingestion aborted: %w", err)
	}

	log.Printf("ingestion complete: %d succeeded, %d failed", report.Succeeded, len(report.Failed))
	for _, f := range report.Failed {
		log.Printf("  failed %s (%s): %s", f.ID, f.RemedyName, f.Reason)
	}

	noVerify, _ := cmd.Flags().GetBool("no-verify")
	if !noVerify && report.Succeeded > 0 {
		verifyIngestion(ctx, embeddingClient, remedyRepo)
	}

	if !report.Ok() {
		return fmt.Errorf("%d of %d chunks failed", len(report.Failed), len(chunks))
	}
	return nil
}

func readSource(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (string, []byte, error) {
	s3Key, _ := cmd.Flags().GetString("s3-key")
	if s3Key != "" {
		if !cfg.HasS3() {
			return "", nil, fmt.Errorf("--s3-key requires REMEDIA_S3_ENDPOINT, REMEDIA_S3_ACCESS_KEY_ID and REMEDIA_S3_SECRET_ACCESS_KEY")
		}
		store, err := storage.NewCorpusStore(ctx, storage.CorpusStoreConfig{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			Bucket:          cfg.S3Bucket,
			UsePathStyle:    true,
		})
		if err != nil {
			return "", nil, fmt.Errorf("failed to create corpus store: %w", err)
		}
		data, err := store.Fetch(ctx, s3Key)
		if err != nil {
			return "", nil, err
		}
		return s3Key, data, nil
	}

	file, _ := cmd.Flags().GetString("file")
	data, err := os.ReadFile(file)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read source file: %w", err)
	}
	return file, data, nil
}

// verifyIngestion runs a sample query against the freshly populated index.
// Failures are reported but do not fail the run.
func verifyIngestion(ctx context.Context, embedding service.EmbeddingClient, index service.RemedyIndex) {
	searchSvc := service.NewSearchService(embedding, index)
	out, err := searchSvc.Search(ctx, service.SearchInput{Query: verifyQuery, TopK: 3})
	if err != nil {
		log.Printf("verification query failed: %v", err)
		return
	}

	log.Printf("verification query %q returned %d results:", verifyQuery, len(out.Results))
	for i, r := range out.Results {
		log.Printf("  %d. %s (similarity: %.4f)", i+1, r.RemedyName, r.Similarity)
	}
}
