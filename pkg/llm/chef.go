// Package llm talks to an OpenAI-compatible backend to generate daily menus,
// revise them from user feedback and mine permanent dietary constraints out
// of that feedback.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/dailymenu/pkg/config"
)

// ErrNotConfigured indicates the API key is missing. Distinct from call
// failures so the caller can tell "not configured" from "request failed".
var ErrNotConfigured = errors.New("llm api key is not configured")

// Chef uses an LLM to plan and revise daily menus
type Chef struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewChef creates a new LLM chef client. Fails fast with ErrNotConfigured
// when the API key is absent.
func NewChef(cfg config.LLMConfig) (*Chef, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	// use custom system prompt if provided, otherwise use default persona
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Chef{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}, nil
}

// GenerateRequest contains all parameters for daily menu generation
type GenerateRequest struct {
	Today       time.Time
	Weekend     bool
	History     []string
	Preferences string
}

// GenerateMenu asks the LLM for a fresh daily menu built from the current
// date, weekend flag, preference block and recent history
func (c *Chef) GenerateMenu(ctx context.Context, req GenerateRequest) (string, error) {
	today := req.Today
	if today.IsZero() {
		today = time.Now()
	}

	prompt := buildGeneratePrompt(today, req.Weekend, req.History, req.Preferences)
	return c.complete(ctx, prompt, float32(c.config.Temperature))
}

// UpdateMenu asks the LLM to revise the current menu per user feedback,
// preserving meals the feedback doesn't target
func (c *Chef) UpdateMenu(ctx context.Context, currentMenu, feedback string, weekend bool) (string, error) {
	prompt := buildUpdatePrompt(currentMenu, feedback, weekend)
	return c.complete(ctx, prompt, float32(c.config.Temperature))
}

// constraintsResponse is the structured-output shape for constraint extraction
type constraintsResponse struct {
	Constraints []string `json:"constraints" jsonschema:"description=Short permanent constraint strings like 'No broccoli'"`
}

// constraintsSchema is reflected once, it is static
var constraintsSchema = func() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(&constraintsResponse{})
}()

// ExtractConstraints mines permanent dietary constraints from free-text
// feedback. Transient requests ("not feeling rice today") are ignored by the
// prompt. A response that fails to parse after retries degrades to zero
// constraints; transport and API errors are returned to the caller.
func (c *Chef) ExtractConstraints(ctx context.Context, feedback string) ([]string, error) {
	prompt := buildExtractPrompt(feedback)

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		chatReq := openai.ChatCompletionRequest{
			Model:     c.config.Model,
			MaxTokens: c.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
				JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
					Name:   "dietary_constraints",
					Schema: constraintsSchema,
				},
			},
		}

		resp, err := c.client.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			return nil, fmt.Errorf("constraint extraction failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no response from llm")
		}

		var parsed constraintsResponse
		if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
			lastErr = err
			continue // malformed json, retry
		}
		return parsed.Constraints, nil
	}

	// malformed output is not worth failing the whole update for
	log.Printf("[WARN] constraint extraction returned unparsable output, ignoring: %v", lastErr)
	return []string{}, nil
}

// complete runs a single chat completion with the chef persona system message
func (c *Chef) complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: temperature,
		MaxTokens:   c.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	return resp.Choices[0].Message.Content, nil
}
