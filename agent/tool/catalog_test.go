package tool

import (
	"strings"
	"testing"
)

func TestLookupOrder(t *testing.T) {
	t.Parallel()

	order, ok := LookupOrder("12345")
	if !ok {
		t.Fatal("expected order 12345 to exist")
	}
	if order.Product != "TechBook Pro 15" {
		t.Fatalf("unexpected product: %s", order.Product)
	}

	if _, ok := LookupOrder("99999"); ok {
		t.Fatal("unknown order must not resolve")
	}
}

func TestCheckWarranty(t *testing.T) {
	t.Parallel()

	summary, ok := CheckWarranty("12345")
	if !ok {
		t.Fatal("expected warranty info for order 12345")
	}
	if !strings.Contains(summary, "2 years") || !strings.Contains(summary, "2026-01-30") {
		t.Fatalf("unexpected warranty summary: %q", summary)
	}
}

func TestTrackShipment(t *testing.T) {
	t.Parallel()

	delivered, ok := TrackShipment("12345")
	if !ok || !strings.Contains(delivered, "delivered") {
		t.Fatalf("unexpected tracking for delivered order: %q", delivered)
	}

	shipped, ok := TrackShipment("12347")
	if !ok || !strings.Contains(shipped, "in transit") {
		t.Fatalf("unexpected tracking for shipped order: %q", shipped)
	}
}

func TestInitiateReturnFeeRules(t *testing.T) {
	t.Parallel()

	free, ok := InitiateReturn("12345", "defective")
	if !ok || !strings.Contains(free, "no restocking fee") {
		t.Fatalf("defective returns must waive the fee: %q", free)
	}

	paid, ok := InitiateReturn("12345", "customer_preference")
	if !ok || !strings.Contains(paid, "15% restocking fee") {
		t.Fatalf("preference returns must carry the fee: %q", paid)
	}
}

func TestSearchProducts(t *testing.T) {
	t.Parallel()

	found := SearchProducts("looking for a gaming machine")
	if len(found) != 1 || found[0].ID != "TB-GAME-17" {
		t.Fatalf("unexpected gaming search result: %#v", found)
	}

	if found := SearchProducts("something unrelated"); len(found) != 0 {
		t.Fatalf("expected no match, got %#v", found)
	}
}

func TestKnowledgeStepsMatching(t *testing.T) {
	t.Parallel()

	steps := KnowledgeSteps("my wifi keeps dropping")
	if len(steps) == 0 || !strings.Contains(steps[0], "router") {
		t.Fatalf("unexpected wifi steps: %#v", steps)
	}

	fallback := KnowledgeSteps("it makes a weird buzzing sound")
	if len(fallback) != len(generalSteps) {
		t.Fatalf("unmatched issues must get general advice: %#v", fallback)
	}
}

func TestPolicyLookup(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{"return", "warranty", "exchange"} {
		lines, ok := Policy(kind)
		if !ok || len(lines) == 0 {
			t.Fatalf("missing policy %s", kind)
		}
	}
	if _, ok := Policy("bribery"); ok {
		t.Fatal("unknown policy kinds must not resolve")
	}
}
