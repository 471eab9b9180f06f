package rag

import (
	"strings"

	"github.com/Srijit125/ai-demo/internal/models"
)

// Intent is a coarse classification of question purpose, used to pick
// canned follow-up suggestions.
type Intent string

const (
	IntentAdvantages    Intent = "advantages"
	IntentDisadvantages Intent = "disadvantages"
	IntentDefinition    Intent = "definition"
	IntentProcess       Intent = "process"
	IntentTypes         Intent = "types"
	IntentApplications  Intent = "applications"
	IntentGeneral       Intent = "general"
)

// Keyword groups checked in priority order; the first matching group wins.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentAdvantages, []string{"advantage", "benefit", "pros"}},
	{IntentDisadvantages, []string{"disadvantage", "limitation", "cons"}},
	{IntentDefinition, []string{"define", "what is", "meaning"}},
	{IntentProcess, []string{"process", "steps", "procedure", "how"}},
	{IntentTypes, []string{"types", "classification"}},
	{IntentApplications, []string{"application", "use"}},
}

// DetectIntent classifies a question by keyword match.
func DetectIntent(question string) Intent {
	q := strings.ToLower(question)
	for _, group := range intentKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(q, kw) {
				return group.intent
			}
		}
	}
	return IntentGeneral
}

var intentSuggestions = map[Intent][]string{
	IntentAdvantages:    {"What are the disadvantages?"},
	IntentDisadvantages: {"What are the advantages?"},
	IntentDefinition:    {"Can you explain the process in detail?"},
	IntentProcess:       {"What are the advantages and limitations?"},
	IntentTypes:         {"Can you explain each type?"},
	IntentApplications:  {"What are the advantages and limitations?"},
}

// PathDelimiter separates ancestor section names in a passage path,
// innermost last.
const PathDelimiter = ">"

const maxFollowUps = 3

// orderedSet deduplicates while keeping insertion order, so the truncation
// to maxFollowUps is a stable contract rather than a map-iteration accident.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, dup := s.seen[v]; dup {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

// FollowUps suggests up to three next questions. Candidates accumulate in a
// fixed order: continuation of the last history entry, intent-based
// suggestions, then per-reference suggestions derived from the passage path
// and title.
func FollowUps(question string, refs []models.PassageRecord, history []string) []string {
	set := newOrderedSet()

	if len(history) > 0 {
		set.add("Continue with " + history[len(history)-1])
	}

	for _, s := range intentSuggestions[DetectIntent(question)] {
		set.add(s)
	}

	for _, r := range refs {
		if strings.Contains(r.Path, PathDelimiter) {
			segments := strings.Split(r.Path, PathDelimiter)
			parent := strings.TrimSpace(segments[len(segments)-1])
			if parent != "" {
				set.add("Explain " + parent + " in detail")
				set.add("What are the advantages of " + parent)
			}
		}
		if title := strings.TrimSpace(r.Title); title != "" {
			set.add("Explain " + title)
			set.add("What are the applications of " + title + "?")
		}
	}

	items := set.items
	if len(items) > maxFollowUps {
		items = items[:maxFollowUps]
	}
	return items
}
