package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkerExtractor(t *testing.T) {
	extract := MarkerExtractor(DefaultAnswerMarker)

	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{
			name: "marker present",
			raw:  "Path 1: reasoning\n✅ Final Answer: 42",
			want: "42",
			ok:   true,
		},
		{
			name: "last marker wins",
			raw:  "Final Answer: draft\nmore thoughts\nFinal Answer: 7",
			want: "7",
			ok:   true,
		},
		{
			name: "no marker falls back to full text",
			raw:  "just an answer with no marker",
			want: "just an answer with no marker",
			ok:   true,
		},
		{
			name: "empty completion",
			raw:  "",
			want: "",
			ok:   false,
		},
		{
			name: "marker with nothing after it",
			raw:  "Path 1: hmm\nFinal Answer:   ",
			want: "",
			ok:   false,
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "Final Answer:\n  Paris  \n",
			want: "Paris",
			ok:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extract(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeAnswer(t *testing.T) {
	assert.Equal(t, "paris", NormalizeAnswer("  Paris "))
	assert.Equal(t, NormalizeAnswer("YES"), NormalizeAnswer("yes"))
	assert.Equal(t, "", NormalizeAnswer("   "))
}
