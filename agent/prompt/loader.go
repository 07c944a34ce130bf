package prompt

import (
	_ "embed"
	"strings"

	contractx "github.com/careloop/techcare-agents/agent/contract"
)

var (
	//go:embed template/order.txt
	orderRaw string

	//go:embed template/tech_support.txt
	techSupportRaw string

	//go:embed template/product.txt
	productRaw string

	//go:embed template/solutions.txt
	solutionsRaw string

	//go:embed template/orchestrator.txt
	orchestratorRaw string

	//go:embed template/default.txt
	defaultRaw string
)

// SystemPrompt returns the static role template. Unknown roles resolve to
// the default template.
func SystemPrompt(role contractx.AgentRole) string {
	switch role {
	case contractx.AgentRoleOrder:
		return strings.TrimSpace(orderRaw)
	case contractx.AgentRoleTechSupport:
		return strings.TrimSpace(techSupportRaw)
	case contractx.AgentRoleProduct:
		return strings.TrimSpace(productRaw)
	case contractx.AgentRoleSolutions:
		return strings.TrimSpace(solutionsRaw)
	case contractx.AgentRoleOrchestrator:
		return strings.TrimSpace(orchestratorRaw)
	default:
		return strings.TrimSpace(defaultRaw)
	}
}
