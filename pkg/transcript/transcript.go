// Package transcript owns the accumulated-transcript text format: how
// fragments from separate conversation attempts are merged, and the heuristic
// that guesses whether an interview reached a natural end.
package transcript

import "strings"

const separatorWidth = 80

// Phrases an agent tends to close an interview with. Matching is
// case-insensitive.
var completionIndicators = []string{
	"that's all",
	"completed",
	"all questions answered",
	"concludes",
	"valuable feedback",
	"have a great day",
}

// An interview with at least this many exchanges on both sides is considered
// complete even without an explicit closing phrase.
const completeExchangeThreshold = 13

// Merge appends a new conversation fragment onto the accumulated transcript.
// Prior content is never discarded: attempts are joined with a visible
// "resumed" banner so the history of attempts stays readable.
func Merge(existing, fragment string) string {
	fragment = strings.TrimSpace(fragment)
	if strings.TrimSpace(existing) == "" {
		return fragment
	}
	if fragment == "" {
		return existing
	}

	var b strings.Builder
	b.WriteString(existing)
	b.WriteString("\n\n")
	b.WriteString(strings.Repeat("=", separatorWidth))
	b.WriteString("\n--- Conversation Resumed ---\n")
	b.WriteString(strings.Repeat("=", separatorWidth))
	b.WriteString("\n\n")
	b.WriteString(fragment)
	return b.String()
}

// LooksComplete is a purely advisory heuristic over a formatted transcript.
// It never consults external state; callers use it to drive resume/polling UI.
func LooksComplete(t string) bool {
	if strings.TrimSpace(t) == "" {
		return false
	}

	lower := strings.ToLower(t)
	for _, indicator := range completionIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}

	agentMessages := strings.Count(t, "[AGENT]:")
	userMessages := strings.Count(t, "[USER]:")
	return agentMessages >= completeExchangeThreshold && userMessages >= completeExchangeThreshold
}
