package services

import (
	"context"
	"go_trustedbot_backend/pkg/logging"
	"sync"
)

// CompletionFunc issues one completion request for the reasoning path with
// the given submission index. Implementations must sample with the given
// temperature so independent paths can diverge.
type CompletionFunc func(ctx context.Context, path int, prompt string, temperature float64) (string, error)

type SelectedAnswer struct {
	Answer  string `json:"answer"`
	Support int    `json:"support"`
	Paths   int    `json:"paths"`
}

// ConsensusSelector picks the most consistent answer across N independently
// sampled reasoning paths (CoT-SC).
type ConsensusSelector struct {
	pathCount   int
	temperature float64
	extract     Extractor
}

func NewConsensusSelector(pathCount int, temperature float64, extract Extractor) *ConsensusSelector {
	if extract == nil {
		extract = MarkerExtractor(DefaultAnswerMarker)
	}
	return &ConsensusSelector{
		pathCount:   pathCount,
		temperature: temperature,
		extract:     extract,
	}
}

type pathResult struct {
	text string
	err  error
}

// Select fans out pathCount completion requests, tallies the normalized
// answers, and returns the majority answer. Ties break toward the answer
// first seen in request-submission order, so the result does not depend on
// network timing. Failed paths are dropped from the tally; the call fails
// only when every path fails (ErrUpstreamUnavailable) or no path yields an
// extractable answer (ErrNoConsensus).
func (s *ConsensusSelector) Select(ctx context.Context, prompt string, complete CompletionFunc) (*SelectedAnswer, error) {
	results := make([]pathResult, s.pathCount)

	var wg sync.WaitGroup
	for i := 0; i < s.pathCount; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text, err := complete(ctx, i, prompt, s.temperature)
			results[i] = pathResult{text: text, err: err}
		}(i)
	}
	wg.Wait()

	type candidate struct {
		raw  string
		norm string
	}
	counts := make(map[string]int)
	var seen []candidate // first-seen order, indexed tally is built after all paths settle
	failed := 0
	for i, r := range results {
		if r.err != nil {
			failed++
			logging.Logger.Warn("reasoning path failed", "path", i, "error", r.err)
			continue
		}
		answer, ok := s.extract(r.text)
		if !ok {
			continue
		}
		norm := NormalizeAnswer(answer)
		if counts[norm] == 0 {
			seen = append(seen, candidate{raw: answer, norm: norm})
		}
		counts[norm]++
	}

	if failed == s.pathCount {
		return nil, ErrUpstreamUnavailable
	}
	if len(seen) == 0 {
		return nil, ErrNoConsensus
	}

	best := seen[0]
	for _, c := range seen[1:] {
		if counts[c.norm] > counts[best.norm] {
			best = c
		}
	}
	return &SelectedAnswer{
		Answer:  best.raw,
		Support: counts[best.norm],
		Paths:   s.pathCount,
	}, nil
}
