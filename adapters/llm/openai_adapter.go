package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/vuhoang/roastline/internal/application/service"
	"github.com/vuhoang/roastline/internal/config"
	"github.com/vuhoang/roastline/pkg/apperror"
	"github.com/vuhoang/roastline/pkg/logger"
)

// maxCompletionTokens bounds the roast at well over the 150-word target.
const maxCompletionTokens = 512

type openaiLLMAdapter struct {
	client *openai.Client
	model  string
	log    logger.Logger
}

func NewOpenAILLMAdapter(cfg config.Config, log logger.Logger) (service.LLMService, error) {
	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("llm api_key is not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.LLM.APIKey)
	if cfg.LLM.BaseURL != "" {
		clientConfig.BaseURL = cfg.LLM.BaseURL
	}

	client := openai.NewClientWithConfig(clientConfig)

	log.Info("LLM Adapter initialized", zap.String("model", cfg.LLM.Model))
	return &openaiLLMAdapter{client: client, model: cfg.LLM.Model, log: log}, nil
}

func (a *openaiLLMAdapter) GenerateCompletion(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:     a.model,
		MaxTokens: maxCompletionTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream: false,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", apperror.NewUpstream("chat completion request failed", err)
	}

	if len(resp.Choices) == 0 {
		return "", apperror.NewUpstream("llm returned no chat choices", nil)
	}

	return resp.Choices[0].Message.Content, nil
}
