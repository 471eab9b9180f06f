package index

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// LoadSQLite reads a prebuilt index file: a SQLite database with an
// embeddings table holding one row per corpus position. The whole index is
// pulled into memory; the file is not touched again after startup.
func LoadSQLite(path string) (*Flat, error) {
	// sql.Open would happily create an empty database file.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("index: opening %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT pos, embedding FROM embeddings ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("index: reading embeddings from %s: %w", path, err)
	}
	defer rows.Close()

	var vectors [][]float32
	for rows.Next() {
		var pos int
		var blob []byte
		if err := rows.Scan(&pos, &blob); err != nil {
			return nil, fmt.Errorf("index: scanning row: %w", err)
		}
		if pos != len(vectors) {
			return nil, fmt.Errorf("index: non-contiguous position %d, want %d", pos, len(vectors))
		}
		vec, err := DecodeVector(blob)
		if err != nil {
			return nil, fmt.Errorf("index: position %d: %w", pos, err)
		}
		vectors = append(vectors, vec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("index: reading %s: %w", path, err)
	}

	return New(vectors)
}
