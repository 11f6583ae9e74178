package services

import "strings"

// DefaultAnswerMarker matches the "✅ Final Answer:" line the system prompt asks for.
const DefaultAnswerMarker = "Final Answer:"

// Extractor pulls the final answer out of a raw completion. ok is false when
// the completion holds nothing usable.
type Extractor func(raw string) (answer string, ok bool)

// MarkerExtractor returns everything after the last occurrence of marker.
// A completion without the marker counts as the answer in full.
func MarkerExtractor(marker string) Extractor {
	return func(raw string) (string, bool) {
		answer := raw
		if idx := strings.LastIndex(raw, marker); idx >= 0 {
			answer = raw[idx+len(marker):]
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return "", false
		}
		return answer, true
	}
}

// NormalizeAnswer folds an extracted answer for vote counting.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
