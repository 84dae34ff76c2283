// Package translate implements the domain.Translator port against the public
// Google translate endpoint.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"quizcraft/internal/config"
	"quizcraft/internal/domain"
)

// GoogleClient calls the translate_a/single endpoint with source language
// detection ("auto"). Text longer than the chunk size is split into fixed-size
// chunks, translated sequentially, and concatenated in order.
type GoogleClient struct {
	endpoint   string
	chunkSize  int
	httpClient *http.Client
}

// NewGoogleClient creates a GoogleClient from configuration.
func NewGoogleClient(cfg config.TranslatorConfig) *GoogleClient {
	return &GoogleClient{
		endpoint:  cfg.Endpoint,
		chunkSize: cfg.ChunkSize,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Translate translates text into the target language code.
func (c *GoogleClient) Translate(ctx context.Context, text string, targetCode string) (string, error) {
	if len(text) <= c.chunkSize {
		return c.translateChunk(ctx, text, targetCode)
	}

	var out strings.Builder
	for _, chunk := range chunkText(text, c.chunkSize) {
		translated, err := c.translateChunk(ctx, chunk, targetCode)
		if err != nil {
			return "", err
		}
		out.WriteString(translated)
	}
	return out.String(), nil
}

func (c *GoogleClient) translateChunk(ctx context.Context, chunk string, targetCode string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", targetCode)
	params.Set("dt", "t")
	params.Set("q", chunk)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create translate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("translate endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	return decodeTranslation(resp.Body)
}

// decodeTranslation unpacks the endpoint's nested-array payload. The first
// element holds one [translated, original, ...] entry per sentence segment;
// segments are concatenated in order.
func decodeTranslation(r io.Reader) (string, error) {
	var payload []any
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode translate response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translate response")
	}
	segments, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected translate response shape")
	}

	var out strings.Builder
	for _, seg := range segments {
		fields, ok := seg.([]any)
		if !ok || len(fields) == 0 {
			continue
		}
		if translated, ok := fields[0].(string); ok {
			out.WriteString(translated)
		}
	}
	return out.String(), nil
}

// chunkText splits text into chunks of at most size bytes, backing each cut
// up to the previous rune boundary so multi-byte runes are never split.
func chunkText(text string, size int) []string {
	var chunks []string
	for len(text) > size {
		end := size
		for end > 0 && !utf8.RuneStart(text[end]) {
			end--
		}
		if end == 0 {
			end = size
		}
		chunks = append(chunks, text[:end])
		text = text[end:]
	}
	if len(text) > 0 {
		chunks = append(chunks, text)
	}
	return chunks
}

var _ domain.Translator = (*GoogleClient)(nil)
