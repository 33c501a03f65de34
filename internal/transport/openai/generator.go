// Package openai is the narrative generation provider backed by an
// OpenAI-compatible chat completions API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/vinoteca-cloud/sommelier/internal/domain"
	"github.com/vinoteca-cloud/sommelier/internal/domain/narrative"
	"github.com/vinoteca-cloud/sommelier/internal/metrics"
)

const providerName = "openai"

// PromptBuilder supplies the system and user messages per generation kind.
type PromptBuilder interface {
	ProfileSystemMessage(language string) string
	ComparisonSystemMessage(language string) string
	ProfilePrompt(wine *domain.Wine, language string) string
	ComparisonPrompt(wineA, wineB *domain.Wine, language string) string
}

// Config holds the provider settings.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	MaxTokens      int
	Temperature    float64
	MaxRetries     int           // additional attempts after the first failure
	RetryBaseDelay time.Duration // doubles per retry: base, 2*base, 4*base, ...
	Prompts        PromptBuilder
	Logger         *zap.Logger
}

// Generator implements domain.Generator against the chat completions API with
// bounded retry and exponential backoff on transient failures. The backoff
// wait suspends only the calling request; no lock is held across attempts.
type Generator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	maxRetries  int
	baseDelay   time.Duration
	prompts     PromptBuilder
	logger      *zap.Logger

	// sleep is injectable so tests can observe backoff without waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewGenerator creates the provider.
func NewGenerator(cfg *Config) *Generator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Generator{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: float32(cfg.Temperature),
		maxRetries:  cfg.MaxRetries,
		baseDelay:   cfg.RetryBaseDelay,
		prompts:     cfg.Prompts,
		logger:      cfg.Logger,
		sleep:       sleepContext,
	}
}

// Name implements domain.Generator.
func (g *Generator) Name() string { return providerName }

// GenerateProfile implements domain.Generator.
func (g *Generator) GenerateProfile(
	ctx context.Context, wine *domain.Wine, language string,
) (narrative.Document, error) {
	system := g.prompts.ProfileSystemMessage(language)
	user := g.prompts.ProfilePrompt(wine, language)
	return g.complete(ctx, string(narrative.KindProfile), system, user)
}

// GenerateComparison implements domain.Generator.
func (g *Generator) GenerateComparison(
	ctx context.Context, wineA, wineB *domain.Wine, language string,
) (narrative.Document, error) {
	system := g.prompts.ComparisonSystemMessage(language)
	user := g.prompts.ComparisonPrompt(wineA, wineB, language)
	return g.complete(ctx, string(narrative.KindComparison), system, user)
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (g *Generator) HealthCheck(ctx context.Context) error {
	if _, err := g.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// complete runs the bounded retry loop around one chat completion call.
// Attempt budget is 1 + maxRetries; only transient outcomes are retried.
func (g *Generator) complete(ctx context.Context, kind, system, user string) (narrative.Document, error) {
	req := openai.ChatCompletionRequest{
		Model:       g.model,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	attempts := g.maxRetries + 1
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := g.baseDelay << (attempt - 1)
			g.logger.Warn("Retrying generation request",
				zap.String("kind", kind),
				zap.Int("attempt", attempt+1),
				zap.Int("max_attempts", attempts),
				zap.Duration("delay", delay),
				zap.Error(lastErr),
			)
			metrics.GenerationRetriesTotal.WithLabelValues(providerName, g.model).Inc()
			if err := g.sleep(ctx, delay); err != nil {
				return nil, fmt.Errorf("generation cancelled: %w", err)
			}
		}

		start := time.Now()
		resp, err := g.client.CreateChatCompletion(ctx, req)
		duration := time.Since(start)

		if err != nil {
			metrics.GenerationRequestsTotal.WithLabelValues(providerName, g.model, kind, "error").Inc()
			if ctx.Err() != nil {
				return nil, fmt.Errorf("generation cancelled: %w", ctx.Err())
			}
			if !retryable(err) {
				metrics.GenerationErrorsTotal.WithLabelValues(providerName, g.model, "rejected").Inc()
				return nil, classifyAPIError(err)
			}
			metrics.GenerationErrorsTotal.WithLabelValues(providerName, g.model, "transient").Inc()
			lastErr = err
			continue
		}

		metrics.GenerationRequestsTotal.WithLabelValues(providerName, g.model, kind, "success").Inc()
		metrics.GenerationRequestDuration.WithLabelValues(providerName, g.model, kind).Observe(duration.Seconds())
		if resp.Usage.TotalTokens > 0 {
			metrics.GenerationTokensTotal.
				WithLabelValues(providerName, g.model, "prompt").Add(float64(resp.Usage.PromptTokens))
			metrics.GenerationTokensTotal.
				WithLabelValues(providerName, g.model, "completion").Add(float64(resp.Usage.CompletionTokens))
		}

		content, err := extractContent(&resp)
		if err != nil {
			metrics.GenerationErrorsTotal.WithLabelValues(providerName, g.model, "malformed_envelope").Inc()
			return nil, err
		}

		doc, err := parseDocument(content)
		if err != nil {
			metrics.GenerationErrorsTotal.WithLabelValues(providerName, g.model, "malformed_payload").Inc()
			return nil, err
		}

		return doc, nil
	}

	metrics.GenerationErrorsTotal.WithLabelValues(providerName, g.model, "exhausted").Inc()
	return nil, fmt.Errorf("generation failed after %d attempts: %v: %w",
		attempts, lastErr, domain.ErrGenerationExhausted)
}

// extractContent pulls the assistant text out of the provider envelope.
func extractContent(resp *openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response: %w", domain.ErrMalformedResponse)
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("no content in response: %w", domain.ErrMalformedResponse)
	}
	return content, nil
}

// parseDocument strips an optional markdown code fence and parses the payload.
// Malformed output from the provider is terminal, never retried.
func parseDocument(content string) (narrative.Document, error) {
	clean := strings.TrimSpace(content)
	if strings.HasPrefix(clean, "```json") {
		clean = clean[len("```json"):]
	} else if strings.HasPrefix(clean, "```") {
		clean = clean[len("```"):]
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	clean = strings.TrimSpace(clean)

	var doc narrative.Document
	if err := json.Unmarshal([]byte(clean), &doc); err != nil {
		return nil, fmt.Errorf("parse generation payload: %v: %w", err, domain.ErrMalformedResponse)
	}
	return doc, nil
}

// retryable reports whether the outcome may succeed on a later attempt:
// 5xx, 429 and transport-level failures. Other 4xx are client errors.
func retryable(err error) bool {
	if code, ok := statusCode(err); ok {
		return code >= 500 || code == 429
	}
	// Transport-level failure without an HTTP status.
	return true
}

// classifyAPIError wraps a non-retryable provider error with its sentinel.
func classifyAPIError(err error) error {
	if code, ok := statusCode(err); ok {
		return fmt.Errorf("generation API error %d: %v: %w", code, err, domain.ErrProviderRejected)
	}
	return fmt.Errorf("generation request failed: %v: %w", err, domain.ErrProviderRejected)
}

func statusCode(err error) (int, bool) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode, true
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode, true
	}
	return 0, false
}

// sleepContext waits for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
