package coach

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

const DefaultModel = "gpt-4.1-mini"

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OpenAIGenerator implements Generator with the OpenAI chat completions API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(cfg OpenAIConfig) *OpenAIGenerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

// Generate returns the first choice's content, or "" when the response
// has no choices.
func (g *OpenAIGenerator) Generate(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    g.model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", toGenerationError(err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func toGenerationError(err error) *GenerationError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &GenerationError{
			Status:  apiErr.HTTPStatusCode,
			Type:    apiErr.Type,
			Message: apiErr.Message,
			Err:     err,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &GenerationError{
			Status:  reqErr.HTTPStatusCode,
			Message: reqErr.Error(),
			Err:     err,
		}
	}

	return &GenerationError{Message: err.Error(), Err: err}
}
