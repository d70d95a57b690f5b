package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	IndexName       string `envconfig:"INDEX_NAME" default:"homeopathy_remedies"`
	PreviewMaxChars int    `envconfig:"PREVIEW_MAX_CHARS" default:"300"`

	OpenAIAPIKey        string `envconfig:"OPENAI_API_KEY"`
	EmbeddingModel      string `envconfig:"EMBEDDING_MODEL" default:"text-embedding-3-small"`
	EmbeddingDimensions int    `envconfig:"EMBEDDING_DIMENSIONS" default:"1536"`

	SummaryAPIKey         string `envconfig:"SUMMARY_API_KEY"`
	SummaryBaseURL        string `envconfig:"SUMMARY_BASE_URL"`
	SummaryModel          string `envconfig:"SUMMARY_MODEL" default:"gpt-4o-mini"`
	SummaryTimeoutSeconds int    `envconfig:"SUMMARY_TIMEOUT_SECONDS" default:"8"`

	S3Endpoint  string `envconfig:"S3_ENDPOINT"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY_ID"`
	S3SecretKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	S3Bucket    string `envconfig:"S3_BUCKET" default:"remedia-corpus"`
	S3Region    string `envconfig:"S3_REGION" default:"us-east-1"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("REMEDIA", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasS3() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}

// HasSummarizer reports whether a summarization key is configured. A missing
// key is treated the same as an unreachable summarizer downstream.
func (c *Config) HasSummarizer() bool {
	return c.SummaryAPIKey != ""
}

func (c *Config) SummaryTimeout() time.Duration {
	if c.SummaryTimeoutSeconds <= 0 {
		return 8 * time.Second
	}
	return time.Duration(c.SummaryTimeoutSeconds) * time.Second
}
