package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/pkg/config"
)

const systemPrompt = `You are the Jackson Multifacet website assistant.
Jackson Multifacet is a recruitment and business development agency based in Nigeria.
It offers recruitment, HR consultancy, business development (CV revamp, branding,
business proposals, company registration) and IT support services.
Answer briefly and only about the agency and its services. If asked anything
unrelated, politely redirect the visitor to the contact form.`

const evaluationPrompt = `You are a recruitment analyst. Evaluate the following
candidate profile for the desired positions. Reply with a short assessment:
strengths, gaps, and a suitability score from 1 to 10.`

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		client: openai.NewClient(cfg.AssistantAPIKey),
		model:  cfg.AssistantModel,
	}
}

// Reply answers a site visitor's question, constrained to agency topics.
func (c *Client) Reply(ctx context.Context, question string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// EvaluateProfile scores a submitted candidate profile against the positions
// the candidate applied for.
func (c *Client) EvaluateProfile(ctx context.Context, profile string, positions []string) (string, error) {
	var sb strings.Builder

	sb.WriteString("Desired positions: ")
	sb.WriteString(strings.Join(positions, ", "))
	sb.WriteString("\n\nProfile:\n")
	sb.WriteString(profile)

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: evaluationPrompt},
			{Role: openai.ChatMessageRoleUser, Content: sb.String()},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
