package agents

import (
	"context"
	"testing"

	contractx "github.com/careloop/techcare-agents/agent/contract"
	llmx "github.com/careloop/techcare-agents/agent/llm"
)

func TestNewRegistryWithoutCredentials(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(context.Background(), llmx.Config{Model: "models/gemini-2.5-flash"})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	for _, role := range contractx.Roles() {
		envelope := registry.ByRole(role).Generate(context.Background(), contractx.GenerateRequest{
			UserMessage: "hello",
		})
		if envelope.Provenance != "mock: no credential" {
			t.Fatalf("role %s: unexpected provenance %q", role, envelope.Provenance)
		}
		if envelope.Confidence != 0.6 {
			t.Fatalf("role %s: unexpected confidence %v", role, envelope.Confidence)
		}
		if envelope.AgentRole != role {
			t.Fatalf("role %s: envelope reports %s", role, envelope.AgentRole)
		}
	}
}

func TestRegistryByRoleIsTotal(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(context.Background(), llmx.Config{Model: "models/gemini-2.5-flash"})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	generator := registry.ByRole(contractx.AgentRole("unknown"))
	if generator == nil {
		t.Fatal("ByRole must resolve unknown roles")
	}
	envelope := generator.Generate(context.Background(), contractx.GenerateRequest{UserMessage: "hi"})
	if envelope.AgentRole != contractx.AgentRoleOrchestrator {
		t.Fatalf("unknown roles should land on the orchestrator, got %s", envelope.AgentRole)
	}
}

func TestNewRegistryRejectsEmptyModel(t *testing.T) {
	t.Parallel()

	if _, err := NewRegistry(context.Background(), llmx.Config{}); err == nil {
		t.Fatal("expected validation error for empty default model")
	}
}
