// Package translate converts the UI-text catalog into another language via
// the Gemini API. Translation is atomic from the caller's perspective: it
// returns a complete same-shaped catalog or an *Error, never a partial one.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

// Error is a translation failure. Callers keep the previous catalog and
// surface the message as a notification.
type Error struct {
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("translation failed: %s: %v", e.Reason, e.Err)
	}
	return "translation failed: " + e.Reason
}

func (e *Error) Unwrap() error { return e.Err }

type Config struct {
	APIKey   string
	Model    string // default: gemini-2.5-flash-lite
	Endpoint string // default: Google generative language API
}

type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash-lite"
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// TranslateCatalog translates every catalog value into the target language.
// The response must contain exactly the input keys; anything else is an
// *Error and the caller's catalog stays as it was.
func (c *Client) TranslateCatalog(ctx context.Context, language string, catalog Catalog) (Catalog, error) {
	if strings.TrimSpace(language) == "" {
		return nil, &Error{Reason: "empty target language"}
	}
	if c.cfg.APIKey == "" {
		return nil, &Error{Reason: "missing API key (set LEASETRACK_GEMINI_API_KEY)"}
	}

	prompt, err := buildPrompt(language, catalog)
	if err != nil {
		return nil, &Error{Reason: "build prompt", Err: err}
	}

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, &Error{Reason: "gemini call", Err: err}
	}

	out, err := parseCatalog(text, catalog)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func buildPrompt(language string, catalog Catalog) (string, error) {
	// Keys sorted so the prompt (and any cached response) is stable.
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ordered := make(map[string]string, len(catalog))
	for _, k := range keys {
		ordered[k] = catalog[k]
	}
	b, err := json.Marshal(ordered)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Translate the values of this JSON object into ")
	sb.WriteString(language)
	sb.WriteString(".\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Return a JSON object with exactly the same keys.\n")
	sb.WriteString("- Translate only the values; keep them short (UI labels).\n")
	sb.WriteString("- Keep keyboard shortcut prefixes like \"/ \" or \"1-9 \" untouched.\n")
	sb.WriteString("- Respond with JSON only, no commentary.\n\n")
	sb.Write(b)
	return sb.String(), nil
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.cfg.Endpoint, c.cfg.Model, c.cfg.APIKey)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned %d: %.200s", resp.StatusCode, string(respBody))
	}

	var gr geminiResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return "", fmt.Errorf("parse gemini response: %w", err)
	}
	if gr.Error != nil {
		return "", fmt.Errorf("gemini error %d: %s", gr.Error.Code, gr.Error.Message)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
