// Package genai adapts a langchaingo model to the domain.TextGenerator port.
package genai

import (
	"context"
	"strings"
	"time"

	"quizcraft/internal/config"
	"quizcraft/internal/domain"
	"quizcraft/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// Generator wraps an llms.Model with the timeout, temperature, and error
// classification the retry loop relies on.
type Generator struct {
	model       llms.Model
	temperature float64
	timeout     time.Duration
}

// NewGenerator creates a Generator around any langchaingo model.
func NewGenerator(model llms.Model, cfg config.GenAIConfig) *Generator {
	return &Generator{
		model:       model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

// Generate sends the prompt to the model and returns its raw text output.
// Auth and configuration failures come back as non-retryable domain errors;
// everything else is retryable and consumed by the loop as a failed attempt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	response, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt,
		llms.WithTemperature(g.temperature))
	if err != nil {
		if isAuthError(err) {
			logger.Get().Error("Generation service rejected credentials", zap.Error(err))
			return "", domain.NewLLMAuthError(err)
		}
		logger.Get().Warn("Generation call failed", zap.Error(err))
		return "", domain.NewLLMServiceError(err)
	}

	logger.Get().Debug("Generation call succeeded", zap.Int("response_bytes", len(response)))
	return response, nil
}

func isAuthError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"api key",
		"api_key",
		"unauthenticated",
		"unauthorized",
		"permission denied",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

var _ domain.TextGenerator = (*Generator)(nil)
