package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/pageza/diet-recipe/backend/config"
	"github.com/pageza/diet-recipe/backend/internal/types"
)

// ErrEmptyCompletion is returned when the upstream response carries no choices.
var ErrEmptyCompletion = errors.New("no response from API")

// LLMService handles interactions with an OpenAI-compatible chat completion API.
// It holds no credential: every call authenticates with the key it is given.
type LLMService struct {
	apiURL      string
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

// NewLLMService creates a new LLMService instance
func NewLLMService(cfg *config.Config) *LLMService {
	return &LLMService{
		apiURL:      cfg.LLMAPIURL,
		model:       cfg.LLMModel,
		maxTokens:   cfg.LLMMaxTokens,
		temperature: cfg.LLMTemperature,
		timeout:     cfg.LLMTimeout,
	}
}

// newClient builds a client scoped to a single call so credentials never
// outlive the request that supplied them.
func (s *LLMService) newClient(apiKey string) *openai.Client {
	clientCfg := openai.DefaultConfig(apiKey)
	clientCfg.BaseURL = s.apiURL
	clientCfg.HTTPClient = &http.Client{Timeout: s.timeout}
	return openai.NewClientWithConfig(clientCfg)
}

// GenerateRecipe asks the upstream model for a dinner recipe suited to diet
// and returns the first choice's text unchanged. Exactly one request is made.
func (s *LLMService) GenerateRecipe(ctx context.Context, diet types.DietType, apiKey string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    recipeMessages(diet),
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}

	start := time.Now()
	resp, err := s.newClient(apiKey).CreateChatCompletion(ctx, req)
	upstreamRequestDuration.WithLabelValues(diet.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequestsTotal.WithLabelValues(diet.String(), "error").Inc()
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		upstreamRequestsTotal.WithLabelValues(diet.String(), "empty").Inc()
		return "", ErrEmptyCompletion
	}

	upstreamRequestsTotal.WithLabelValues(diet.String(), "success").Inc()
	return resp.Choices[0].Message.Content, nil
}
