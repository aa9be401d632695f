package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string
	DBMaxOpenConns int
	DBMaxIdleConns int
	Port           int

	// open ai
	OpenAIKey            string
	OpenAIEmbeddingModel string
	OpenAIChatModel      string
	EmbeddingDimension   int

	// rag config
	ChunkSize           int
	TopKResults         int
	MaxSections         int
	SimilarityThreshold float64

	// ingest config
	ScrapeTimeout time.Duration
	EmbedDelay    time.Duration
}

func Load() *Config {
	godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		port = 8080
	}

	return &Config{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
		Port:           port,

		// OpenAI
		OpenAIKey:            getEnv("OPENAI_API_KEY", ""),
		OpenAIEmbeddingModel: getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
		OpenAIChatModel:      getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingDimension:   getEnvInt("EMBEDDING_DIMENSION", 1536),

		// RAG Config
		ChunkSize:           getEnvInt("CHUNK_SIZE", 1000),
		TopKResults:         getEnvInt("TOP_K_RESULTS", 10),
		MaxSections:         getEnvInt("MAX_SECTIONS", 5),
		SimilarityThreshold: getEnvFloat("SIMILARITY_THRESHOLD", 0.5),

		// Ingest Config
		ScrapeTimeout: time.Duration(getEnvInt("SCRAPE_TIMEOUT_SECONDS", 10)) * time.Second,
		EmbedDelay:    time.Duration(getEnvInt("EMBED_DELAY_MS", 100)) * time.Millisecond,
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
