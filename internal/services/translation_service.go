package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"translate-api/internal/config"
	"translate-api/internal/pkg/errors"
)

const (
	translationModel       = "GLM-4-Flash-250414"
	translationMaxTokens   = 2048
	translationTemperature = 0.3

	// DefaultTargetLang is used when the request omits target_lang.
	DefaultTargetLang = "English"
)

type TranslationService interface {
	// Translate sends one synchronous chat-completion request and returns the
	// first completion's text verbatim. No retry, no fallback provider.
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

type zhipuTranslationService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewTranslationService(cfg *config.AppConfig) TranslationService {
	return &zhipuTranslationService{
		baseURL: strings.TrimRight(cfg.ZhipuBaseURL, "/"),
		apiKey:  cfg.ZhipuAPIKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatThinking struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Stream      bool          `json:"stream"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Thinking    *chatThinking `json:"thinking,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *zhipuTranslationService) Translate(ctx context.Context, text, targetLang string) (string, error) {
	payload, err := json.Marshal(chatCompletionRequest{
		Model: translationModel,
		Messages: []chatMessage{
			{Role: "system", Content: translationInstruction(targetLang)},
			{Role: "user", Content: text},
		},
		Stream:      false,
		Temperature: translationTemperature,
		MaxTokens:   translationMaxTokens,
		Thinking:    &chatThinking{Type: "disabled"},
	})
	if err != nil {
		return "", &errors.GatewayError{Message: "failed to encode translation request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", &errors.GatewayError{Message: "failed to build translation request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &errors.GatewayError{Message: "translation request failed", Err: err}
	}
	defer resp.Body.Close()

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", &errors.GatewayError{Message: "failed to decode translation response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		message := fmt.Sprintf("translation provider returned status %d", resp.StatusCode)
		if completion.Error != nil && completion.Error.Message != "" {
			message = message + ": " + completion.Error.Message
		}
		return "", &errors.GatewayError{Message: message}
	}

	if len(completion.Choices) == 0 {
		return "", &errors.GatewayError{Message: "translation provider returned no completion"}
	}

	return completion.Choices[0].Message.Content, nil
}

func translationInstruction(targetLang string) string {
	return fmt.Sprintf(
		"You are a professional translation assistant. "+
			"Translate the text you are given into the target language described as: %s. "+
			"The description may be a natural-language name (such as \"Simplified Chinese\" or \"English\") "+
			"or a language code (such as zh, en, ja or fr); interpret it yourself. "+
			"Output only the translated text itself, with no explanation, prefix or suffix.",
		targetLang,
	)
}
