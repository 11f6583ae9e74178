package services

import "errors"

var (
	// ErrUpstreamUnavailable means every reasoning path failed at the provider.
	ErrUpstreamUnavailable = errors.New("upstream unavailable: all completion requests failed")

	// ErrNoConsensus means the provider answered but no path yielded an extractable answer.
	ErrNoConsensus = errors.New("no consensus: no extractable answer in any reasoning path")
)
