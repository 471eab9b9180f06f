package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Srijit125/ai-demo/internal/chatlog"
	"github.com/Srijit125/ai-demo/internal/utils"
)

func analyticsFixture(t *testing.T, lines ...string) AnalyticsService {
	t.Helper()

	path := filepath.Join(t.TempDir(), "chat_logs.jsonl")
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return NewAnalyticsService(chatlog.New(path, testLogger()))
}

func TestDailyCount(t *testing.T) {
	svc := analyticsFixture(t,
		`{"id":"a","timestamp":"2024-01-01T09:00:00Z","question":"q1","answer":"a1"}`,
		`{"id":"b","timestamp":"2024-01-01T17:30:00Z","question":"q2","answer":"a2"}`,
		`{"id":"c","timestamp":"2024-01-02T08:00:00Z","question":"q3","answer":"a3"}`,
		`malformed line`,
	)

	counts, err := svc.DailyCount()
	if err != nil {
		t.Fatalf("DailyCount failed: %v", err)
	}
	if counts["2024-01-01"] != 2 || counts["2024-01-02"] != 1 || len(counts) != 2 {
		t.Fatalf("DailyCount = %v", counts)
	}
}

func TestTopChunksSortedWithStableTies(t *testing.T) {
	svc := analyticsFixture(t,
		`{"id":"a","timestamp":"2024-01-01T09:00:00Z","question":"q","answer":"a","titles":["Eviction","Caching"]}`,
		`{"id":"b","timestamp":"2024-01-01T09:05:00Z","question":"q","answer":"a","titles":["Caching","Sharding"]}`,
	)

	pairs, err := svc.TopChunks()
	if err != nil {
		t.Fatalf("TopChunks failed: %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("got %d pairs, want 3", len(pairs))
	}
	if pairs[0].Key != "Caching" || pairs[0].Count != 2 {
		t.Errorf("pairs[0] = %+v", pairs[0])
	}
	// Eviction and Sharding both count 1; Eviction was seen first.
	if pairs[1].Key != "Eviction" || pairs[2].Key != "Sharding" {
		t.Errorf("tie order = %q, %q", pairs[1].Key, pairs[2].Key)
	}
}

func TestTopChunksLimit(t *testing.T) {
	lines := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		entry := map[string]any{
			"id":        "e",
			"timestamp": "2024-01-01T09:00:00Z",
			"question":  "q",
			"answer":    "a",
			"titles":    []string{string(rune('A' + i))},
		}
		b, _ := json.Marshal(entry)
		lines = append(lines, string(b))
	}
	svc := analyticsFixture(t, lines...)

	pairs, err := svc.TopChunks()
	if err != nil {
		t.Fatalf("TopChunks failed: %v", err)
	}
	if len(pairs) != 20 {
		t.Fatalf("got %d pairs, want 20", len(pairs))
	}
}

func TestAnswerLength(t *testing.T) {
	svc := analyticsFixture(t,
		`{"id":"a","timestamp":"2024-01-01T09:00:00Z","question":"q","answer":"ab"}`,
		`{"id":"b","timestamp":"2024-01-01T09:05:00Z","question":"q","answer":"abcd"}`,
	)

	stats, err := svc.AnswerLength()
	if err != nil {
		t.Fatalf("AnswerLength failed: %v", err)
	}
	if stats.Avg != 3 || stats.Min != 2 || stats.Max != 4 {
		t.Fatalf("AnswerLength = %+v", stats)
	}
}

func TestAnswerLengthEmptyLog(t *testing.T) {
	svc := analyticsFixture(t)

	if _, err := svc.AnswerLength(); !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND for empty log, got %v", err)
	}
}

func TestTopQuestionsNormalizes(t *testing.T) {
	svc := analyticsFixture(t,
		`{"id":"a","timestamp":"2024-01-01T09:00:00Z","question":"  What IS caching ","answer":"a"}`,
		`{"id":"b","timestamp":"2024-01-01T09:05:00Z","question":"what is caching","answer":"a"}`,
		`{"id":"c","timestamp":"2024-01-01T09:10:00Z","question":"why sharding","answer":"a"}`,
	)

	pairs, err := svc.TopQuestions()
	if err != nil {
		t.Fatalf("TopQuestions failed: %v", err)
	}
	if pairs[0].Key != "what is caching" || pairs[0].Count != 2 {
		t.Fatalf("pairs[0] = %+v", pairs[0])
	}
	if pairs[1].Key != "why sharding" || pairs[1].Count != 1 {
		t.Fatalf("pairs[1] = %+v", pairs[1])
	}
}

func TestPairCountJSON(t *testing.T) {
	b, err := json.Marshal([]PairCount{{Key: "Caching", Count: 3}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != `[["Caching",3]]` {
		t.Fatalf("PairCount JSON = %s", b)
	}
}
