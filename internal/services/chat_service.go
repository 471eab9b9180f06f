package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Srijit125/ai-demo/internal/chatlog"
	"github.com/Srijit125/ai-demo/internal/corpus"
	"github.com/Srijit125/ai-demo/internal/index"
	"github.com/Srijit125/ai-demo/internal/models"
	"github.com/Srijit125/ai-demo/internal/providers/embedding"
	"github.com/Srijit125/ai-demo/internal/rag"
	"github.com/Srijit125/ai-demo/internal/utils"
)

// ChatResult is the outcome of one chat exchange.
type ChatResult struct {
	Question  string
	Answer    string
	FollowUps []string
	Reference []models.PassageRecord
}

type ChatService interface {
	// Ask runs the full pipeline: resolve the question against history,
	// embed, search, compose the answer and follow-ups, and append the
	// exchange to the interaction log. History is request-scoped input; the
	// service keeps no conversation state between calls.
	Ask(ctx context.Context, question string, history []string) (*ChatResult, error)
}

type chatService struct {
	embedder embedding.Provider
	index    *index.Flat
	corpus   *corpus.Store
	chatlog  *chatlog.Store
	topK     int
	logger   *logrus.Logger
}

func NewChatService(embedder embedding.Provider, idx *index.Flat, passages *corpus.Store, log *chatlog.Store, topK int, logger *logrus.Logger) ChatService {
	if topK <= 0 {
		topK = 3
	}
	return &chatService{
		embedder: embedder,
		index:    idx,
		corpus:   passages,
		chatlog:  log,
		topK:     topK,
		logger:   logger,
	}
}

func (s *chatService) Ask(ctx context.Context, question string, history []string) (*ChatResult, error) {
	const op = "ChatService.Ask"

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "question is required", nil)
	}

	// The resolved form is used only for retrieval; the log and the
	// response keep the question the caller actually asked.
	resolved := rag.Resolve(question, history)

	vec, err := s.embedder.Embed(ctx, resolved)
	if err != nil {
		return nil, err
	}

	positions, err := s.index.Search(vec, s.topK)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "vector search failed", err)
	}

	refs := make([]models.PassageRecord, 0, len(positions))
	for _, pos := range positions {
		rec, err := s.corpus.At(pos)
		if err != nil {
			// Index and corpus files disagree: a deployment defect, not a
			// per-request condition.
			return nil, utils.E(utils.CodeInternal, op, "index position has no corpus entry", err)
		}
		refs = append(refs, rec)
	}

	answer, outRefs := rag.Compose(refs)
	followUps := rag.FollowUps(question, refs, history)
	if followUps == nil {
		followUps = []string{}
	}

	if err := s.chatlog.Append(question, answer, refs); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to record interaction", err)
	}

	s.logger.WithFields(logrus.Fields{
		"resolved":  resolved != question,
		"refs":      len(refs),
		"follow_up": len(followUps),
	}).Debug("chat answered")

	return &ChatResult{
		Question:  question,
		Answer:    answer,
		FollowUps: followUps,
		Reference: outRefs,
	}, nil
}
