package models

// PassageRecord is one retrievable unit of the reference corpus. Records are
// loaded once at startup from the corpus metadata file and are immutable for
// the process lifetime. Position i in the vector index corresponds exactly
// to record i of the corpus.
type PassageRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Path  string `json:"path"`
	Text  string `json:"text"`
}
