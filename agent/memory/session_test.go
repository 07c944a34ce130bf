package memory

import (
	"fmt"
	"testing"
	"time"

	contractx "github.com/careloop/techcare-agents/agent/contract"
)

func TestGetOrCreateAssignsID(t *testing.T) {
	t.Parallel()

	m := New()
	id := m.GetOrCreate("")
	if id == "" {
		t.Fatal("expected a generated session id")
	}
	if again := m.GetOrCreate(id); again != id {
		t.Fatalf("existing session must be reused, got %s", again)
	}
}

func TestContextExtraction(t *testing.T) {
	t.Parallel()

	m := New()
	id := m.GetOrCreate("")

	if err := m.AddMessage(id, contractx.TurnUser, "My TechBook order #12345 has wifi problems", "", nil); err != nil {
		t.Fatalf("AddMessage() error = %v", err)
	}

	convo := m.ContextFor(id)
	if len(convo.OrdersDiscussed) != 1 || convo.OrdersDiscussed[0] != "12345" {
		t.Fatalf("order extraction failed: %#v", convo.OrdersDiscussed)
	}
	if len(convo.IssuesMentioned) != 1 || convo.IssuesMentioned[0] != "wifi" {
		t.Fatalf("issue extraction failed: %#v", convo.IssuesMentioned)
	}
	if len(convo.ProductsDiscussed) != 1 || convo.ProductsDiscussed[0] != "techbook" {
		t.Fatalf("product extraction failed: %#v", convo.ProductsDiscussed)
	}

	// Mentioning the same order again must not duplicate it.
	if err := m.AddMessage(id, contractx.TurnUser, "again, order 12345", "", nil); err != nil {
		t.Fatalf("AddMessage() error = %v", err)
	}
	convo = m.ContextFor(id)
	if len(convo.OrdersDiscussed) != 1 {
		t.Fatalf("orders must stay unique: %#v", convo.OrdersDiscussed)
	}
}

func TestRecentWindowBounded(t *testing.T) {
	t.Parallel()

	m := New()
	id := m.GetOrCreate("")

	for i := 0; i < 8; i++ {
		role := contractx.TurnUser
		if i%2 == 1 {
			role = contractx.TurnAssistant
		}
		if err := m.AddMessage(id, role, fmt.Sprintf("message %d", i), "", nil); err != nil {
			t.Fatalf("AddMessage() error = %v", err)
		}
	}

	convo := m.ContextFor(id)
	if len(convo.RecentConversation) != 5 {
		t.Fatalf("expected window of 5, got %d", len(convo.RecentConversation))
	}
	if convo.RecentConversation[0].Content != "message 3" {
		t.Fatalf("window must keep the newest turns oldest first: %#v", convo.RecentConversation)
	}
	if convo.RecentConversation[4].Content != "message 7" {
		t.Fatalf("last turn wrong: %#v", convo.RecentConversation)
	}
}

func TestSessionExpiry(t *testing.T) {
	t.Parallel()

	now := time.Now()
	clock := func() time.Time { return now }
	m := New(WithTTL(time.Minute), WithClock(func() time.Time { return clock() }))

	id := m.GetOrCreate("")
	if err := m.AddMessage(id, contractx.TurnUser, "hello", "", nil); err != nil {
		t.Fatalf("AddMessage() error = %v", err)
	}

	// Advance past the TTL: the session is gone and writes fail.
	later := now.Add(2 * time.Minute)
	clock = func() time.Time { return later }

	if err := m.AddMessage(id, contractx.TurnUser, "still there?", "", nil); err == nil {
		t.Fatal("expected ErrSessionNotFound for expired session")
	}
	if convo := m.ContextFor(id); len(convo.RecentConversation) != 0 {
		t.Fatalf("expired session must yield an empty context: %#v", convo)
	}

	// GetOrCreate with the stale id starts a fresh session under the same id.
	if got := m.GetOrCreate(id); got != id {
		t.Fatalf("expected stale id to be reused for a fresh session, got %s", got)
	}
	if convo := m.ContextFor(id); len(convo.RecentConversation) != 0 {
		t.Fatal("fresh session must start empty")
	}
}

func TestClearAndActiveSessions(t *testing.T) {
	t.Parallel()

	m := New()
	a := m.GetOrCreate("")
	b := m.GetOrCreate("")

	if len(m.ActiveSessions()) != 2 {
		t.Fatalf("expected 2 active sessions, got %d", len(m.ActiveSessions()))
	}
	if !m.Clear(a) {
		t.Fatal("Clear must report an existing session")
	}
	if m.Clear(a) {
		t.Fatal("Clear must report a missing session")
	}
	remaining := m.ActiveSessions()
	if len(remaining) != 1 || remaining[0] != b {
		t.Fatalf("unexpected remaining sessions: %#v", remaining)
	}
}
