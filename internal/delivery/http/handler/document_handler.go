package handler

import (
	"errors"
	"fmt"
	"io"

	"webrag-api/internal/delivery/http/dto"
	"webrag-api/internal/domain/entity"
	"webrag-api/internal/usecase/document"

	"github.com/gofiber/fiber/v2"
)

type DocumentHandler struct {
	docUsecase *document.DocumentUsecase
}

func NewDocumentHandler(docUsecase *document.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{docUsecase: docUsecase}
}

// Scrape fetches and chunks a web page without indexing it, so the client
// can preview what would be stored.
func (h *DocumentHandler) Scrape(c *fiber.Ctx) error {
	var req dto.ScrapeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	content, err := h.docUsecase.ScrapeURL(c.Context(), req.URL)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.ScrapeResponse{
		Success: true,
		Data:    content,
	})
}

// Embed indexes previously scraped content, replacing whatever was stored
// for the same URL.
func (h *DocumentHandler) Embed(c *fiber.Ctx) error {
	var req dto.EmbedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	count, err := h.docUsecase.IngestContent(c.Context(), req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.EmbedResponse{
		Success:         true,
		VectorID:        document.SourceID(req.Content.URL),
		ChunksProcessed: count,
		Message:         "Döküman başarıyla vektör veritabanına kaydedildi",
	})
}

// Upload ingests a PDF file.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Failed to get file"})
	}

	if file.Header.Get("Content-Type") != "application/pdf" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "unsupported file type"})
	}

	fileData, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to open file"})
	}
	defer fileData.Close()

	buf, err := io.ReadAll(fileData)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to read file"})
	}

	count, err := h.docUsecase.IngestPDF(c.Context(), file.Filename, buf)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{
		Success:         true,
		FileName:        file.Filename,
		ChunksProcessed: count,
		Message:         "Döküman başarıyla vektör veritabanına kaydedildi",
	})
}

// Stats reports how many vectors the store holds.
func (h *DocumentHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.docUsecase.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	message := "Henüz vektör bulunamadı"
	if stats.TotalVectors > 0 {
		message = fmt.Sprintf("%d vektör mevcut", stats.TotalVectors)
	}

	return c.Status(fiber.StatusOK).JSON(dto.DocumentsResponse{
		Success:      true,
		TotalVectors: stats.TotalVectors,
		IndexStats:   stats,
		Message:      message,
	})
}

// respondError maps the error taxonomy to HTTP statuses: validation
// problems are the client's fault, everything else is a 500.
func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, entity.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
}
