package services

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/Srijit125/ai-demo/internal/chatlog"
	"github.com/Srijit125/ai-demo/internal/models"
	"github.com/Srijit125/ai-demo/internal/utils"
)

const topN = 20

// PairCount is a (key, count) aggregate, serialized as a two-element array
// to match the dashboard's expectations.
type PairCount struct {
	Key   string
	Count int
}

func (p PairCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Key, p.Count})
}

// AnswerLengthStats summarizes answer character lengths across the log.
type AnswerLengthStats struct {
	Avg float64 `json:"avg"`
	Min int     `json:"min"`
	Max int     `json:"max"`
}

// AnalyticsService computes aggregates over the interaction log. Every query
// re-scans the full log; nothing is cached or kept incrementally, so results
// are always consistent with the file on disk.
type AnalyticsService interface {
	DailyCount() (map[string]int, error)
	TopChunks() ([]PairCount, error)
	AnswerLength() (*AnswerLengthStats, error)
	TopQuestions() ([]PairCount, error)
}

type analyticsService struct {
	chatlog *chatlog.Store
}

func NewAnalyticsService(log *chatlog.Store) AnalyticsService {
	return &analyticsService{chatlog: log}
}

// DailyCount groups entries by the date portion of the timestamp.
func (s *analyticsService) DailyCount() (map[string]int, error) {
	counts := make(map[string]int)
	err := s.chatlog.ForEach(func(e models.ChatLogEntry) {
		if len(e.Timestamp) < 10 {
			return
		}
		counts[e.Timestamp[:10]]++
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, "AnalyticsService.DailyCount", "failed to scan log", err)
	}
	return counts, nil
}

// TopChunks counts how often each passage title appears across all entries.
func (s *analyticsService) TopChunks() ([]PairCount, error) {
	c := newCounter()
	err := s.chatlog.ForEach(func(e models.ChatLogEntry) {
		for _, title := range e.Titles {
			c.add(title)
		}
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, "AnalyticsService.TopChunks", "failed to scan log", err)
	}
	return c.top(topN), nil
}

// AnswerLength reports mean, minimum, and maximum answer length.
func (s *analyticsService) AnswerLength() (*AnswerLengthStats, error) {
	const op = "AnalyticsService.AnswerLength"

	var total, count int
	stats := AnswerLengthStats{}
	err := s.chatlog.ForEach(func(e models.ChatLogEntry) {
		n := len(e.Answer)
		if count == 0 || n < stats.Min {
			stats.Min = n
		}
		if n > stats.Max {
			stats.Max = n
		}
		total += n
		count++
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to scan log", err)
	}
	if count == 0 {
		return nil, utils.E(utils.CodeNotFound, op, "interaction log is empty", nil)
	}
	stats.Avg = float64(total) / float64(count)
	return &stats, nil
}

// TopQuestions counts normalized (trimmed, lowercased) questions.
func (s *analyticsService) TopQuestions() ([]PairCount, error) {
	c := newCounter()
	err := s.chatlog.ForEach(func(e models.ChatLogEntry) {
		c.add(strings.ToLower(strings.TrimSpace(e.Question)))
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, "AnalyticsService.TopQuestions", "failed to scan log", err)
	}
	return c.top(topN), nil
}

// counter tracks occurrence counts plus first-seen order, so equal counts
// rank in encounter order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) top(n int) []PairCount {
	pairs := make([]PairCount, 0, len(c.order))
	for _, key := range c.order {
		pairs = append(pairs, PairCount{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Count > pairs[j].Count })
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}
