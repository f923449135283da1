package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"mailtriage/internal/domain/email"
)

// Client wraps the OpenAI chat-completion API. It serves both pipeline
// calls: classification and reply drafting. Every call sends a single
// user-role message and reads the first choice's content.
type Client struct {
	api   openai.Client
	model string
}

func NewClient(apiKey, model string, opts ...option.RequestOption) *Client {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)

	return &Client{
		api:   openai.NewClient(opts...),
		model: model,
	}
}

// Classify asks the model for exactly one category token and validates it
// against the category set. Out-of-set output surfaces as
// email.ErrUnknownCategory; the caller decides how to recover.
func (c *Client) Classify(ctx context.Context, e *email.Email) (email.Category, error) {
	names := make([]string, 0, 5)
	for _, cat := range email.Categories() {
		names = append(names, cat.String())
	}

	prompt := fmt.Sprintf(`Classify the following email as one of the following categories: %s

Subject: %s
Body: %s

Return only the category (JUST THE CATEGORY, NO QUOTES).`,
		strings.Join(names, ", "), e.Subject, e.Body)

	text, err := c.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("classify email %s: %w", e.ID, err)
	}

	category, err := email.ParseCategory(text)
	if err != nil {
		return "", fmt.Errorf("classify email %s: %w (raw=%q)", e.ID, err, text)
	}

	return category, nil
}

// Draft asks the model for the body of an automated reply and returns it
// verbatim. No validation, no length limits, no template fallback.
func (c *Client) Draft(ctx context.Context, e *email.Email, category email.Category) (string, error) {
	prompt := fmt.Sprintf(`Generate an automated response for the following email. The category is %s.

Subject: %s
Body: %s

Return only the message body of the reply (JUST THE MESSAGE, NO EXTRA TEXT).`,
		category, e.Subject, e.Body)

	text, err := c.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("draft reply for email %s: %w", e.ID, err)
	}

	return text, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty LLM response")
	}

	return resp.Choices[0].Message.Content, nil
}
