// Package chatlog persists question/answer exchanges as newline-delimited
// JSON: one self-contained entry per line, append-only, never rewritten.
// Analytics re-reads the whole file on every query.
package chatlog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Srijit125/ai-demo/internal/models"
)

type Store struct {
	path string
	log  *logrus.Logger

	// Serializes appends so concurrent requests cannot interleave inside a
	// record. Each append is a single Write of one complete line, which also
	// keeps unlocked scans safe.
	mu sync.Mutex
}

func New(path string, log *logrus.Logger) *Store {
	return &Store{path: path, log: log}
}

// Append records one exchange. The file is opened and closed per call, so a
// failed request later on never leaves the log in a half-written state.
func (s *Store) Append(question, answer string, refs []models.PassageRecord) error {
	ids := make([]string, len(refs))
	titles := make([]string, len(refs))
	for i, r := range refs {
		ids[i] = r.ID
		titles[i] = r.Title
	}

	entry := models.ChatLogEntry{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Question:   question,
		Answer:     answer,
		ChunksUsed: ids,
		Titles:     titles,
		Reference:  refs,
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("chatlog: marshaling entry: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("chatlog: opening %s: %w", s.path, err)
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("chatlog: appending to %s: %w", s.path, err)
	}
	return nil
}

// ForEach scans the full log and invokes fn for every parseable entry in
// append order. Malformed lines are skipped with a warning. A log file that
// does not exist yet counts as empty.
func (s *Store) ForEach(fn func(models.ChatLogEntry)) error {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("chatlog: opening %s: %w", s.path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var entry models.ChatLogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			s.log.WithError(err).Warn("chatlog: skipping malformed line")
			continue
		}
		fn(entry)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("chatlog: scanning %s: %w", s.path, err)
	}
	return nil
}
