package agents

import (
	"strings"
	"testing"
)

func TestEstimateConfidence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want float64
	}{
		{name: "empty", text: "", want: 0.5},
		{name: "short", text: "Sure.", want: 0.5},
		{name: "moderate", text: strings.Repeat("x", 150), want: 0.7},
		{name: "long without keywords", text: strings.Repeat("x", 250), want: 0.7},
		{name: "long with recommend", text: strings.Repeat("x", 250) + "I recommend this", want: 0.9},
		{name: "long with specific uppercase", text: strings.Repeat("x", 201) + " SPECIFIC detail", want: 0.9},
		{name: "keyword but short", text: "I recommend it", want: 0.5},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := estimateConfidence(tc.text); got != tc.want {
				t.Fatalf("estimateConfidence() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEstimateConfidenceDeterministic(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("a very specific answer ", 12)
	first := estimateConfidence(text)
	for i := 0; i < 10; i++ {
		if got := estimateConfidence(text); got != first {
			t.Fatalf("estimator not deterministic: %v vs %v", got, first)
		}
	}
}
