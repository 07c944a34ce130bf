package provider

import (
	"context"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	contractx "github.com/careloop/techcare-agents/agent/contract"
)

type openAIClient struct {
	client *openaisdk.Client
}

// NewOpenAI builds the client for the chat-completions backend. The call is a
// natural suspension point; no local timeout is applied beyond the caller's
// context.
func NewOpenAI(apiKey string, opts ...option.RequestOption) Client {
	all := append([]option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(apiKey)),
	}, opts...)
	client := openaisdk.NewClient(all...)
	return &openAIClient{client: &client}
}

func (c *openAIClient) Kind() Kind { return KindOpenAI }

func (c *openAIClient) Complete(ctx context.Context, req Request, params Params) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(params.Model),
		Messages:    buildMessages(req),
		Temperature: openaisdk.Float(float64(params.Temperature)),
		MaxTokens:   openaisdk.Int(int64(params.MaxOutputTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrProvider, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: completion has no choices", contractx.ErrProvider)
	}
	return completion.Choices[0].Message.Content, nil
}

// buildMessages orders the chat payload: system prompt first, the recent
// window as discrete role-tagged messages in original order, then the current
// user turn last.
func buildMessages(req Request) []openaisdk.ChatCompletionMessageParamUnion {
	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(req.Window)+2)
	messages = append(messages, openaisdk.SystemMessage(req.SystemPrompt))
	for _, turn := range req.Window {
		if turn.Role == contractx.TurnAssistant {
			messages = append(messages, openaisdk.AssistantMessage(turn.Content))
			continue
		}
		messages = append(messages, openaisdk.UserMessage(turn.Content))
	}
	messages = append(messages, openaisdk.UserMessage(req.UserTurn))
	return messages
}
