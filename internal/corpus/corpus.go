// Package corpus holds the reference passage metadata. The corpus file is a
// JSON array of passage records in the same order as the vector index; it is
// read once at startup and never written.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Srijit125/ai-demo/internal/models"
)

type Store struct {
	records []models.PassageRecord
}

// NewStore wraps an already-ordered record slice. Record i must correspond
// to position i of the vector index.
func NewStore(records []models.PassageRecord) *Store {
	return &Store{records: records}
}

// Load reads the corpus metadata file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: reading %s: %w", path, err)
	}
	var records []models.PassageRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("corpus: parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("corpus: %s contains no records", path)
	}
	return NewStore(records), nil
}

func (s *Store) Len() int { return len(s.records) }

// At returns the record for an index position. An out-of-range position
// means the index and corpus files do not match.
func (s *Store) At(pos int) (models.PassageRecord, error) {
	if pos < 0 || pos >= len(s.records) {
		return models.PassageRecord{}, fmt.Errorf("corpus: position %d out of range (%d records)", pos, len(s.records))
	}
	return s.records[pos], nil
}
