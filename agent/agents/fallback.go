package agents

import contractx "github.com/careloop/techcare-agents/agent/contract"

// mockConfidence is the fixed trust score attached to synthesized responses.
const mockConfidence = 0.6

const genericOfflineLine = "I'm here to help with your request."

// OfflineScript is the immutable mapping from role to the canned sentence
// used when no backend is reachable or willing to answer. It is supplied at
// responder construction and never mutated afterwards.
type OfflineScript map[contractx.AgentRole]string

// DefaultOfflineScript returns the stock per-specialty sentences.
func DefaultOfflineScript() OfflineScript {
	return OfflineScript{
		contractx.AgentRoleOrder:       "I've located your order information and can help with any questions about status, tracking, or modifications.",
		contractx.AgentRoleTechSupport: "I can help troubleshoot your technical issue. Let me provide some steps to resolve this problem.",
		contractx.AgentRoleProduct:     "I can provide detailed product information and help you compare different options to find the best fit.",
		contractx.AgentRoleSolutions:   "I understand you need assistance with a return or exchange. Let me help you with the best solution for your situation.",
	}
}

// Line is total over roles: unmapped roles get the generic sentence.
func (s OfflineScript) Line(role contractx.AgentRole) string {
	if line, ok := s[role]; ok && line != "" {
		return line
	}
	return genericOfflineLine
}
