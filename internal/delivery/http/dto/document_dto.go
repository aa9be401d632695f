package dto

import "webrag-api/internal/domain/entity"

type ScrapeRequest struct {
	URL string `json:"url"`
}

type ScrapeResponse struct {
	Success bool                   `json:"success"`
	Data    *entity.ScrapedContent `json:"data"`
}

type EmbedRequest struct {
	Content *entity.ScrapedContent `json:"content"`
}

type EmbedResponse struct {
	Success         bool   `json:"success"`
	VectorID        string `json:"vectorId"`
	ChunksProcessed int    `json:"chunksProcessed"`
	Message         string `json:"message"`
}

type UploadResponse struct {
	Success         bool   `json:"success"`
	FileName        string `json:"fileName"`
	ChunksProcessed int    `json:"chunksProcessed"`
	Message         string `json:"message"`
}

type DocumentsResponse struct {
	Success      bool               `json:"success"`
	TotalVectors int                `json:"totalVectors"`
	IndexStats   *entity.IndexStats `json:"indexStats"`
	Message      string             `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
