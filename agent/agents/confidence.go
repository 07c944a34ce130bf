package agents

import "strings"

// Byte-length thresholds for the confidence heuristic.
const (
	detailedLength = 200
	moderateLength = 100
)

// estimateConfidence maps response text to a trust score in [0,1]. Pure,
// deterministic, and total over all strings including the empty string.
func estimateConfidence(text string) float64 {
	lower := strings.ToLower(text)
	if len(text) > detailedLength && (strings.Contains(lower, "specific") || strings.Contains(lower, "recommend")) {
		return 0.9
	}
	if len(text) > moderateLength {
		return 0.7
	}
	return 0.5
}
