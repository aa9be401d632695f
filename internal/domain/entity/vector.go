package entity

// IndexedVector is one embedded chunk as written to the vector store.
type IndexedVector struct {
	ID        string        `json:"id"`
	Embedding []float32     `json:"embedding"`
	Metadata  ChunkMetadata `json:"metadata"`
}

// Match is a single similarity-search result. Score is a cosine-style
// similarity in [-1, 1], higher is closer.
type Match struct {
	ID       string        `json:"id"`
	Score    float64       `json:"score"`
	Metadata ChunkMetadata `json:"metadata"`
}

// SectionMap maps the 1-based section numbers shown to the model back to
// human-readable source labels. It lives for a single answer turn.
type SectionMap map[int]string

// IndexStats mirrors the vector store's describe-stats call.
type IndexStats struct {
	TotalVectors int            `json:"totalVectors"`
	Dimension    int            `json:"dimension"`
	Namespaces   map[string]int `json:"namespaces,omitempty"`
}

// ChatResult is the terminal output of one answer turn.
type ChatResult struct {
	Response       string   `json:"response"`
	Sources        []string `json:"sources"`
	ConversationID string   `json:"conversationId"`
}
