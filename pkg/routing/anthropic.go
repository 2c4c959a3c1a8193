package routing

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/mcp-router/mcp-router/pkg/models"
)

// analysisMaxTokens bounds the analysis response; the expected JSON is tiny.
const analysisMaxTokens = 1024

// AnthropicAnalyzer analyzes queries through the Anthropic Messages API.
type AnthropicAnalyzer struct {
	client anthropic.Client
	model  string
}

// NewAnthropicAnalyzer creates an analyzer for the given model.
func NewAnthropicAnalyzer(apiKey, model string) (*AnthropicAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic analyzer requires an api key")
	}
	if model == "" {
		return nil, fmt.Errorf("anthropic analyzer requires a model")
	}
	return &AnthropicAnalyzer{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

// AnalyzeQuery implements Analyzer.
func (a *AnthropicAnalyzer) AnalyzeQuery(ctx context.Context, query string, capabilities []string) (models.QueryAnalysis, error) {
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: analysisMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: analysisPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildUserMessage(query, capabilities))),
		},
	})
	if err != nil {
		return models.QueryAnalysis{}, fmt.Errorf("message creation failed: %w", err)
	}

	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return models.QueryAnalysis{}, fmt.Errorf("message contained no text content")
	}
	return parseAnalysis(strings.Join(parts, "\n"), capabilities)
}
