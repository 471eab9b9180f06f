package rag

import (
	"strings"

	"github.com/Srijit125/ai-demo/internal/models"
)

// FallbackAnswer replaces answers that are empty or too short to be useful.
const FallbackAnswer = "Ask course relevant questions! Try Again!!"

const minAnswerLen = 5

// Compose joins the retrieved passage texts in rank order, dropping empty
// texts and exact duplicates. When the combined answer is shorter than the
// minimum, the fallback message is substituted and the first reference's
// path is blanked in the returned copy; the input slice itself is never
// modified, so the interaction log keeps the real retrieval result.
func Compose(refs []models.PassageRecord) (string, []models.PassageRecord) {
	var parts []string
	seen := make(map[string]struct{})
	for _, r := range refs {
		text := strings.TrimSpace(r.Text)
		if text == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		parts = append(parts, text)
	}

	answer := strings.Join(parts, " ")
	if len(answer) >= minAnswerLen {
		return answer, refs
	}

	out := refs
	if len(refs) > 0 {
		out = make([]models.PassageRecord, len(refs))
		copy(out, refs)
		out[0].Path = ""
	}
	return FallbackAnswer, out
}
