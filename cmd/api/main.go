package main

import (
	"context"
	"fmt"
	"log"

	"webrag-api/internal/adapter/openai"
	"webrag-api/internal/adapter/repository/memory"
	"webrag-api/internal/adapter/repository/postgres"
	"webrag-api/internal/adapter/scraper"
	"webrag-api/internal/delivery/http/handler"
	"webrag-api/internal/domain/repository"
	"webrag-api/internal/usecase/chat"
	"webrag-api/internal/usecase/document"
	"webrag-api/pkg/config"
	"webrag-api/pkg/database"

	"github.com/gofiber/fiber/v2"

	// log
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	// pick the vector store: postgres/pgvector when configured, otherwise
	// an in-memory store that lasts for the process lifetime
	var store repository.VectorStore
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := postgres.Initialize(context.Background(), db, cfg.EmbeddingDimension); err != nil {
			log.Fatalf("failed to initialize vector table: %v", err)
		}
		store = postgres.NewVectorRepository(db)
		log.Println("connected to database")
	} else {
		store = memory.NewVectorRepository()
		log.Println("DATABASE_URL not set, using in-memory vector store")
	}

	// initialize openai clients
	embeddingClient := openai.NewEmbeddingClient(cfg.OpenAIKey, cfg.OpenAIEmbeddingModel)
	chatClient := openai.NewChatClient(cfg.OpenAIKey, cfg.OpenAIChatModel)

	// initialize scraper
	pageScraper := scraper.New(cfg.ScrapeTimeout)

	// initialize usecase
	docUsecase := document.NewDocumentUsecase(
		store,
		embeddingClient,
		pageScraper,
		cfg.ChunkSize,
		cfg.EmbedDelay,
	)
	chatUsecase := chat.NewChatUsecase(
		store,
		embeddingClient,
		chatClient,
		cfg.TopKResults,
		cfg.MaxSections,
		cfg.SimilarityThreshold,
	)

	// initialize handler
	docHandler := handler.NewDocumentHandler(docUsecase)
	chatHandler := handler.NewChatHandler(chatUsecase)

	// initialize fiber app
	app := fiber.New()

	// middleware for log request and response in terminal
	app.Use(logger.New())

	// routes
	api := app.Group("/api")
	api.Post("/scrape", docHandler.Scrape)
	api.Post("/embed", docHandler.Embed)
	api.Post("/chat", chatHandler.Chat)
	api.Get("/documents", docHandler.Stats)
	api.Post("/documents/upload", docHandler.Upload)

	// Start server
	log.Printf("🚀 Server starting on port %d", cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
