package models

// ChatLogEntry is one question/answer exchange as persisted in the
// interaction log. The log is newline-delimited JSON, one entry per line,
// append-only.
type ChatLogEntry struct {
	ID         string          `json:"id"`
	Timestamp  string          `json:"timestamp"` // UTC, ISO-8601
	Question   string          `json:"question"`  // original, pre-resolution
	Answer     string          `json:"answer"`
	ChunksUsed []string        `json:"chunks_used"`
	Titles     []string        `json:"titles"`
	Reference  []PassageRecord `json:"reference"`
}
