// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/expense-chat/backend/internal/application/adapter"
)

const parsePrompt = `From the message below, extract the following as JSON:
- category (string): The category of the transaction (e.g., "Food", "Transport", "Salary", etc.)
- type (string): Must be exactly one of: "Expense", "Income", "Investment", or "Savings"
- price (number): The amount in the transaction
- sentiment (number): A value from -1 to 1 representing the emotional tone (-1 = very negative, 0 = neutral, 1 = very positive)
- date (string or null): Extract date if mentioned (format: "05 Jul"), otherwise null

Message: %q

Important: Return ONLY valid JSON, no markdown formatting, no explanatory text.`

// GeminiParser implements the TransactionParser using Google Gemini.
// Every failure mode, missing API key, transport error, unparseable
// response, collapses into the unavailable outcome; the caller decides
// what an unparsed message means.
type GeminiParser struct {
	apiKey    string
	modelName string
}

// NewGeminiParser creates a new Gemini parser instance.
func NewGeminiParser(apiKey, modelName string) *GeminiParser {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiParser{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini parser is properly configured.
func (s *GeminiParser) IsAvailable() bool {
	return s.apiKey != ""
}

// Parse sends the message text to Gemini and decodes the structured draft.
func (s *GeminiParser) Parse(ctx context.Context, text string) adapter.ParseOutcome {
	if !s.IsAvailable() {
		slog.Warn("gemini parser is not configured")
		return adapter.UnavailableOutcome()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		slog.Warn("failed to create gemini client", "error", err)
		return adapter.UnavailableOutcome()
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(parsePrompt, text)))
	if err != nil {
		slog.Warn("gemini request failed", "error", err)
		return adapter.UnavailableOutcome()
	}

	raw, err := responseText(resp)
	if err != nil {
		slog.Warn("unusable gemini response", "error", err)
		return adapter.UnavailableOutcome()
	}

	var draft adapter.TransactionDraft
	if err := json.Unmarshal([]byte(sanitizeResponse(raw)), &draft); err != nil {
		slog.Warn("failed to decode gemini response", "error", err)
		return adapter.UnavailableOutcome()
	}

	return adapter.DraftOutcome(&draft)
}

// responseText extracts the first text part of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}

	return "", fmt.Errorf("no text content in response")
}

// sanitizeResponse strips markdown code fences and any prose around
// the JSON object, keeping the first '{' through the last '}'.
func sanitizeResponse(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return cleaned
	}

	return cleaned[start : end+1]
}
