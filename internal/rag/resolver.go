// Package rag contains the pure retrieval-and-composition pipeline: context
// resolution, answer composition, and follow-up generation. Nothing here
// does I/O.
package rag

import "strings"

// Markers that signal the question leans on an earlier turn.
var vagueMarkers = []string{
	"what about",
	"and",
	"explain",
	"tell me more",
	"continue",
	"that",
}

// Resolve rewrites a question that cannot stand on its own. A question is
// vague when it starts with an anaphoric marker or has at most three words;
// in that case the most recent history entry is appended so the embedding
// carries the actual topic. With no history the question passes through
// unchanged.
func Resolve(question string, history []string) string {
	if len(history) == 0 {
		return question
	}

	q := strings.ToLower(strings.TrimSpace(question))
	vague := len(strings.Fields(q)) <= 3
	if !vague {
		for _, m := range vagueMarkers {
			if strings.HasPrefix(q, m) {
				vague = true
				break
			}
		}
	}
	if !vague {
		return question
	}
	return question + " about " + history[len(history)-1]
}
