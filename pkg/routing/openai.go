package routing

import (
	"context"
	"fmt"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/mcp-router/mcp-router/pkg/models"
)

// OpenRouterBaseURL routes OpenAI-shaped requests through OpenRouter.
const OpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenAIAnalyzer analyzes queries through an OpenAI-compatible chat API.
// Works against api.openai.com and OpenRouter.
type OpenAIAnalyzer struct {
	client oai.Client
	model  string
}

// NewOpenAIAnalyzer creates an analyzer. baseURL may be empty for the
// default OpenAI endpoint, or OpenRouterBaseURL.
func NewOpenAIAnalyzer(apiKey, model, baseURL string) (*OpenAIAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai analyzer requires an api key")
	}
	if model == "" {
		return nil, fmt.Errorf("openai analyzer requires a model")
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	return &OpenAIAnalyzer{
		client: oai.NewClient(reqOpts...),
		model:  model,
	}, nil
}

// AnalyzeQuery implements Analyzer.
func (a *OpenAIAnalyzer) AnalyzeQuery(ctx context.Context, query string, capabilities []string) (models.QueryAnalysis, error) {
	resp, err := a.client.Chat.Completions.New(ctx, oai.ChatCompletionNewParams{
		Model: shared.ChatModel(a.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(analysisPrompt),
			oai.UserMessage(buildUserMessage(query, capabilities)),
		},
	})
	if err != nil {
		return models.QueryAnalysis{}, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.QueryAnalysis{}, fmt.Errorf("chat completion returned no choices")
	}
	return parseAnalysis(resp.Choices[0].Message.Content, capabilities)
}
