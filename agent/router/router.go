// Package router selects the specialist role for a customer message. The
// selection is a deterministic keyword scan; it sits outside the generation
// core and only decides which agent's Generate gets the request.
package router

import (
	"strings"
	"unicode"

	contractx "github.com/careloop/techcare-agents/agent/contract"
)

var (
	techSupportHints = []string{"won't turn on", "broken", "issue", "problem", "technical", "fix"}
	solutionsHints   = []string{"return", "refund", "exchange", "solution"}
)

// Route picks the role for a message. Order references win (the word "order"
// or any digit, which usually means an order number), then technical trouble
// phrases, then resolution phrases; everything else goes to the product
// specialist.
func Route(message string) contractx.AgentRole {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "order") || containsDigit(message):
		return contractx.AgentRoleOrder
	case containsAny(lower, techSupportHints):
		return contractx.AgentRoleTechSupport
	case containsAny(lower, solutionsHints):
		return contractx.AgentRoleSolutions
	default:
		return contractx.AgentRoleProduct
	}
}

func containsAny(lower string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
