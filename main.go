package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	agentsx "github.com/careloop/techcare-agents/agent/agents"
	contractx "github.com/careloop/techcare-agents/agent/contract"
	llmx "github.com/careloop/techcare-agents/agent/llm"
	memoryx "github.com/careloop/techcare-agents/agent/memory"
	routerx "github.com/careloop/techcare-agents/agent/router"
	toolx "github.com/careloop/techcare-agents/agent/tool"
	configx "github.com/careloop/techcare-agents/pkg/config"
	_ "github.com/careloop/techcare-agents/pkg/logger/autoload"
)

func main() {
	ctx := context.Background()

	llmCfg := configx.MustNew[llmx.Config]("")
	registry, err := agentsx.NewRegistry(ctx, *llmCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build agent registry")
	}

	sessions := memoryx.New()
	tools := toolx.NewGateway()

	sessionID := sessions.GetOrCreate("")
	fmt.Println("TechCare customer support. Ask about orders, products, technical issues, or returns. Type 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "quit" || message == "exit" {
			break
		}

		sessionID = sessions.GetOrCreate(sessionID)
		if err := sessions.AddMessage(sessionID, contractx.TurnUser, message, "", nil); err != nil {
			log.Error().Err(err).Msg("record user message")
			continue
		}

		envelope := handleMessage(ctx, registry, tools, sessions, sessionID, message)
		fmt.Printf("\n[%s | confidence %.1f | %s]\n%s\n\n", envelope.AgentRole, envelope.Confidence, envelope.Provenance, envelope.Text)

		if err := sessions.AddMessage(sessionID, contractx.TurnAssistant, envelope.Text, envelope.AgentRole, envelope.ToolsUsed); err != nil {
			log.Error().Err(err).Msg("record assistant message")
		}
	}
}

// handleMessage is one request through the glue: route the message, run the
// role's tool playbook, fold the findings into the conversation context, and
// hand everything to the role's generator.
func handleMessage(ctx context.Context, registry contractx.Registry, tools contractx.ToolGateway, sessions *memoryx.SessionMemory, sessionID, message string) contractx.ResponseEnvelope {
	role := routerx.Route(message)
	convo := sessions.ContextFor(sessionID)

	results := tools.Execute(ctx, role, message, convo)
	if findings := toolx.RenderFindings(results); findings != "" {
		if convo.CustomerContext != "" {
			convo.CustomerContext += ". " + findings
		} else {
			convo.CustomerContext = findings
		}
	}

	return registry.ByRole(role).Generate(ctx, contractx.GenerateRequest{
		UserMessage: message,
		Context:     convo,
		ToolsUsed:   toolx.Names(results),
	})
}
