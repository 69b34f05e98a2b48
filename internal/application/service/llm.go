package service

import (
	"context"
)

type LLMService interface {
	GenerateCompletion(ctx context.Context, prompt string) (string, error)
}
