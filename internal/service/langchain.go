package service

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"github.com/katakuxiko/askqa/internal/config"
)

// LangChainClient ходит в модель через langchaingo
type LangChainClient struct {
	llm          llms.Model
	systemPrompt string
	temperature  float64
}

// NewLangChainClient создаёт клиента langchaingo с настройками из config
func NewLangChainClient(cfg *config.Config) (*LangChainClient, error) {
	opts := []openai.Option{
		openai.WithToken(cfg.OpenAIKey),
		openai.WithModel(cfg.ChatModel),
	}
	if cfg.LLMBaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.LLMBaseURL))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}
	return &LangChainClient{
		llm:          llm,
		systemPrompt: cfg.SystemPrompt,
		temperature:  cfg.Temperature,
	}, nil
}

func (l *LangChainClient) Complete(ctx context.Context, question string) (string, error) {
	resp, err := l.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(schema.ChatMessageTypeSystem, l.systemPrompt),
			llms.TextParts(schema.ChatMessageTypeHuman, question),
		},
		llms.WithTemperature(l.temperature),
	)
	if err != nil {
		return "", &ServiceError{Provider: "langchain", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ServiceError{Provider: "langchain", Err: errEmptyCompletion}
	}
	answer := strings.TrimSpace(resp.Choices[0].Content)
	if answer == "" {
		return "", &ServiceError{Provider: "langchain", Err: errEmptyAnswer}
	}
	return answer, nil
}
