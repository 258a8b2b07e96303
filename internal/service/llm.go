package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/katakuxiko/askqa/internal/config"
)

// Completer превращает вопрос в ответ модели. Одна попытка, без повторов.
type Completer interface {
	Complete(ctx context.Context, question string) (string, error)
}

// ServiceError — любая ошибка внешнего сервиса модели (сеть, авторизация, upstream)
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s completion failed: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

var (
	errEmptyCompletion = errors.New("model returned no choices")
	errEmptyAnswer     = errors.New("model returned an empty answer")
)

// NewCompleter выбирает клиента по cfg.LLMProvider
func NewCompleter(cfg *config.Config) (Completer, error) {
	switch cfg.LLMProvider {
	case "openai":
		return NewLLMClient(cfg), nil
	case "langchain":
		return NewLangChainClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.LLMProvider)
	}
}

// LLMClient — клиент для OpenAI и совместимых с ним API
type LLMClient struct {
	client       *openai.Client
	chatName     string
	systemPrompt string
	temperature  float32
}

// NewLLMClient создаёт новый клиент с настройками из config
func NewLLMClient(cfg *config.Config) *LLMClient {
	oaiCfg := openai.DefaultConfig(cfg.OpenAIKey)
	if cfg.LLMBaseURL != "" {
		oaiCfg.BaseURL = cfg.LLMBaseURL
	}

	return &LLMClient{
		client:       openai.NewClientWithConfig(oaiCfg),
		chatName:     cfg.ChatModel,
		systemPrompt: cfg.SystemPrompt,
		temperature:  float32(cfg.Temperature),
	}
}

func (l *LLMClient) Complete(ctx context.Context, question string) (string, error) {
	resp, err := l.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: l.chatName,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: l.systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: question},
			},
			Temperature: l.temperature,
		},
	)
	if err != nil {
		return "", &ServiceError{Provider: "openai", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ServiceError{Provider: "openai", Err: errEmptyCompletion}
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", &ServiceError{Provider: "openai", Err: errEmptyAnswer}
	}
	return answer, nil
}
