package services

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Srijit125/ai-demo/internal/chatlog"
	"github.com/Srijit125/ai-demo/internal/corpus"
	"github.com/Srijit125/ai-demo/internal/index"
	"github.com/Srijit125/ai-demo/internal/models"
	"github.com/Srijit125/ai-demo/internal/rag"
	"github.com/Srijit125/ai-demo/internal/utils"
)

type stubEmbedder struct {
	vec []float32
	err error
}

func (s stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return s.vec, s.err
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fixture: three passages whose vectors rank 0, 1, 2 for the query (0,0).
func chatFixture(t *testing.T, embedder stubEmbedder) (ChatService, *chatlog.Store) {
	t.Helper()

	idx, err := index.New([][]float32{
		{0, 0},
		{0.1, 0},
		{1, 1},
	})
	if err != nil {
		t.Fatalf("index.New failed: %v", err)
	}

	passages := corpus.NewStore([]models.PassageRecord{
		{ID: "c1", Title: "Caching", Path: "Systems > Caching", Text: "Caching improves latency."},
		{ID: "c2", Title: "Caching basics", Path: "Systems > Caching", Text: "Caching improves latency."},
		{ID: "c3", Title: "Eviction", Path: "Systems > Eviction", Text: "Eviction policies bound memory."},
	})

	logStore := chatlog.New(filepath.Join(t.TempDir(), "chat_logs.jsonl"), testLogger())
	return NewChatService(embedder, idx, passages, logStore, 3, testLogger()), logStore
}

func TestAskComposesAndLogs(t *testing.T) {
	svc, logStore := chatFixture(t, stubEmbedder{vec: []float32{0, 0}})

	result, err := svc.Ask(context.Background(), "What are the advantages of caching?", nil)
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	want := "Caching improves latency. Eviction policies bound memory."
	if result.Answer != want {
		t.Errorf("answer = %q, want %q", result.Answer, want)
	}
	if len(result.Reference) != 3 {
		t.Errorf("got %d references, want 3", len(result.Reference))
	}

	foundDisadvantages := false
	for _, q := range result.FollowUps {
		if q == "What are the disadvantages?" {
			foundDisadvantages = true
		}
	}
	if !foundDisadvantages {
		t.Errorf("follow-ups %v should include the disadvantages suggestion", result.FollowUps)
	}

	var entries []models.ChatLogEntry
	if err := logStore.ForEach(func(e models.ChatLogEntry) { entries = append(entries, e) }); err != nil {
		t.Fatalf("ForEach failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	if entries[0].Question != "What are the advantages of caching?" {
		t.Errorf("logged question = %q", entries[0].Question)
	}
	if entries[0].Answer != want {
		t.Errorf("logged answer = %q", entries[0].Answer)
	}
}

func TestAskLogsOriginalQuestionNotResolved(t *testing.T) {
	svc, logStore := chatFixture(t, stubEmbedder{vec: []float32{0, 0}})

	result, err := svc.Ask(context.Background(), "and that?", []string{"garbage collection"})
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if result.Question != "and that?" {
		t.Errorf("response question = %q", result.Question)
	}

	logStore.ForEach(func(e models.ChatLogEntry) {
		if e.Question != "and that?" {
			t.Errorf("logged question = %q, want the pre-resolution form", e.Question)
		}
	})
}

func TestAskEmbeddingFailureAppendsNothing(t *testing.T) {
	svc, logStore := chatFixture(t, stubEmbedder{
		err: utils.E(utils.CodeUnavailable, "HFClient.Embed", "embedding provider returned status 500 Internal Server Error", nil),
	})

	_, err := svc.Ask(context.Background(), "what is caching", nil)
	if !utils.IsCode(err, utils.CodeUnavailable) {
		t.Fatalf("expected UNAVAILABLE, got %v", err)
	}

	count := 0
	if err := logStore.ForEach(func(models.ChatLogEntry) { count++ }); err != nil {
		t.Fatalf("ForEach failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("log has %d entries after a failed request, want 0", count)
	}
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	svc, _ := chatFixture(t, stubEmbedder{vec: []float32{0, 0}})

	if _, err := svc.Ask(context.Background(), "   ", nil); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestAskFallbackBlanksPathInResponseOnly(t *testing.T) {
	idx, err := index.New([][]float32{{0, 0}})
	if err != nil {
		t.Fatalf("index.New failed: %v", err)
	}
	passages := corpus.NewStore([]models.PassageRecord{
		{ID: "c1", Title: "Stub", Path: "Systems > Stub", Text: ""},
	})
	logStore := chatlog.New(filepath.Join(t.TempDir(), "chat_logs.jsonl"), testLogger())
	svc := NewChatService(stubEmbedder{vec: []float32{0, 0}}, idx, passages, logStore, 3, testLogger())

	result, err := svc.Ask(context.Background(), "what is caching", nil)
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if result.Answer != rag.FallbackAnswer {
		t.Errorf("answer = %q, want fallback", result.Answer)
	}
	if result.Reference[0].Path != "" {
		t.Errorf("response path = %q, want blank", result.Reference[0].Path)
	}

	logStore.ForEach(func(e models.ChatLogEntry) {
		if e.Reference[0].Path != "Systems > Stub" {
			t.Errorf("logged path = %q, want the real path", e.Reference[0].Path)
		}
	})
}
