package entity

import "time"

// ScrapedContent is the cleaned result of fetching a single web page,
// together with the chunks the page text was split into.
type ScrapedContent struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Chunks    []string  `json:"chunks"`
	Timestamp time.Time `json:"timestamp"`
}

// ChunkMetadata is stored next to every vector so that retrieval can
// rebuild a source label and the chunk text without re-fetching the page.
type ChunkMetadata struct {
	URL         string `json:"url,omitempty"`
	Title       string `json:"title,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	FileType    string `json:"fileType,omitempty"`
	Timestamp   string `json:"timestamp"`
	ChunkIndex  int    `json:"chunkIndex"`
	TotalChunks int    `json:"totalChunks"`
	Content     string `json:"content"`
}
