/*
Package hype generates short party descriptions through the Gemini API.

The describer degrades instead of failing: without credentials it returns a
deterministic templated string, and any API error or timeout falls back the
same way, so party creation never blocks on the collaborator.
*/
package hype

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ukoradar/internal/pkg/logx"
)

// RequestTimeout bounds a single generation call.
const RequestTimeout = 8 * time.Second

// Describer is the AI text-generation collaborator contract.
type Describer interface {
	// Describe returns a short high-energy description for the given
	// title and vibe label. It always returns usable text.
	Describe(ctx context.Context, title, vibe string) string
}

// FallbackText is the deterministic template used without credentials.
func FallbackText(title, vibe string) string {
	return fmt.Sprintf("(AI Generated) Get ready for the ultimate %s experience! %s - it's going to be legendary! 🚀🔥", vibe, title)
}

// errorFallbackText is returned when a live API call fails.
const errorFallbackText = "Ready to rage! Join us."

// Gemini implements Describer against the Gemini generateContent REST API.
// An empty API key puts it permanently in fallback mode.
type Gemini struct {
	apiKey string
	model  string
	client *http.Client

	logger zerolog.Logger
}

// NewGemini creates a Gemini describer. The key may be empty.
func NewGemini(apiKey, model string) *Gemini {
	return &Gemini{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: RequestTimeout},
		logger: logx.Logger().With().Str("component", "HypeDescriber").Logger(),
	}
}

// geminiRequest mirrors the generateContent request body.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse mirrors the subset of the response we read.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Describe implements Describer.
func (g *Gemini) Describe(ctx context.Context, title, vibe string) string {
	if g.apiKey == "" {
		return FallbackText(title, vibe)
	}

	prompt := fmt.Sprintf(
		`Write a short, high-energy, slang-filled (Gen Z style) party description based on this: %q. The vibe is %s. Keep it under 30 words. Use emojis.`,
		title, vibe,
	)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return errorFallbackText
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent",
		g.model,
	)

	reqCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errorFallbackText
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	res, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn().Err(err).Msg("Gemini request failed. Using fallback description.")
		return errorFallbackText
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		g.logger.Warn().Int("status", res.StatusCode).Msg("Gemini returned non-OK status. Using fallback description.")
		return errorFallbackText
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return errorFallbackText
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return errorFallbackText
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return errorFallbackText
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return errorFallbackText
	}
	return text
}
