package provider

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	contractx "github.com/careloop/techcare-agents/agent/contract"
)

func TestGeminiCompleteSuccess(t *testing.T) {
	t.Parallel()

	var gotPrompt string
	client := &geminiClient{
		generate: func(ctx context.Context, prompt string, params Params) (string, error) {
			gotPrompt = prompt
			return "here are the steps", nil
		},
		timeout: time.Second,
	}

	text, err := client.Complete(context.Background(), Request{
		SystemPrompt: "SYSTEM",
		Window: []contractx.Turn{
			{Role: contractx.TurnUser, Content: "it broke"},
		},
		UserTurn: "Customer Message: help\n\n",
	}, Params{Model: "models/gemini-2.5-flash"})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if text != "here are the steps" {
		t.Fatalf("unexpected text: %q", text)
	}
	if !strings.Contains(gotPrompt, "Recent conversation:\nUser: it broke") {
		t.Fatalf("flattened prompt missing window: %q", gotPrompt)
	}
	if !strings.Contains(gotPrompt, "Current request:\nCustomer Message: help") {
		t.Fatalf("flattened prompt missing current request: %q", gotPrompt)
	}
}

func TestGeminiCompleteTimeout(t *testing.T) {
	t.Parallel()

	client := &geminiClient{
		generate: func(ctx context.Context, prompt string, params Params) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
		timeout: 50 * time.Millisecond,
	}

	start := time.Now()
	_, err := client.Complete(context.Background(), Request{SystemPrompt: "s", UserTurn: "u"}, Params{})
	elapsed := time.Since(start)

	if !errors.Is(err, contractx.ErrProviderTimeout) {
		t.Fatalf("expected ErrProviderTimeout, got %v", err)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("timeout not enforced, took %s", elapsed)
	}
}

func TestGeminiCompleteBackendError(t *testing.T) {
	t.Parallel()

	client := &geminiClient{
		generate: func(ctx context.Context, prompt string, params Params) (string, error) {
			return "", errors.New("quota exceeded")
		},
		timeout: time.Second,
	}

	_, err := client.Complete(context.Background(), Request{SystemPrompt: "s", UserTurn: "u"}, Params{})
	if !errors.Is(err, contractx.ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("error should carry the backend message, got %v", err)
	}
}

func TestGeminiCompleteObservesCancellation(t *testing.T) {
	t.Parallel()

	client := &geminiClient{
		generate: func(ctx context.Context, prompt string, params Params) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
		timeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := client.Complete(ctx, Request{SystemPrompt: "s", UserTurn: "u"}, Params{})
	if err == nil {
		t.Fatal("expected error on cancellation")
	}
	if errors.Is(err, contractx.ErrProviderTimeout) {
		t.Fatalf("cancellation must not be reported as a timeout: %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatal("cancellation did not release the wait")
	}
}
