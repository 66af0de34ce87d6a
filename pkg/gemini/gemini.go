// File: pkg/gemini/gemini.go

// Package gemini is a minimal client for the Gemini REST API, covering the
// two calls docgenie makes: content generation and token counting. It talks
// to the HTTP surface directly rather than pulling in an SDK.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultBaseURL is the Gemini API base URL.
const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Client issues authenticated requests against the Gemini API.
type Client struct {
	// APIKey is the Gemini API key used for authentication.
	APIKey string
	// HTTP is the HTTP client used to make requests. If nil, a default client with timeout is used.
	HTTP *http.Client
	// BaseURL is the Gemini API base URL. If empty, a default value is used.
	BaseURL string
}

// NewClient returns a new Client with sensible defaults applied.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 180 * time.Second},
		BaseURL: defaultBaseURL,
	}
}

// GenerateContentRequest is the request payload for the generateContent API.
//
// The model is specified separately because the REST path encodes it. Only
// text parts are supported.
type GenerateContentRequest struct {
	Model             string            `json:"-"`
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content represents a single conversational message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is a minimal text-only content part.
type Part struct {
	Text string `json:"text,omitempty"`
}

// GenerationConfig captures the generation controls the client supports.
// Temperature is always serialized: zero means deterministic sampling here,
// not "use the service default".
type GenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP,omitempty"`
	TopK            int     `json:"topK,omitempty"`
}

// GenerateContentResponse is a reduced representation of the Gemini response payload.
type GenerateContentResponse struct {
	Candidates    []Candidate    `json:"candidates"`
	ModelVersion  string         `json:"modelVersion,omitempty"`
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`
}

// Candidate represents a single generation candidate returned by Gemini.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
	Index        int     `json:"index,omitempty"`
}

// UsageMetadata contains token accounting information returned by Gemini.
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount,omitempty"`
	CandidatesTokenCount int `json:"candidatesTokenCount,omitempty"`
	TotalTokenCount      int `json:"totalTokenCount,omitempty"`
}

// Text returns the first candidate's concatenated text parts.
func (r *GenerateContentResponse) Text() string {
	if r == nil {
		return ""
	}
	for _, cand := range r.Candidates {
		var b strings.Builder
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				b.WriteString(part.Text)
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}

// CountTokensRequest is the request payload for the countTokens API.
type CountTokensRequest struct {
	Model    string    `json:"-"`
	Contents []Content `json:"contents"`
}

// CountTokensResponse carries the token total for the submitted contents.
type CountTokensResponse struct {
	TotalTokens int `json:"totalTokens"`
}

// APIError represents the structured error response returned by Gemini.
type APIError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateContent sends a generateContent request and returns the parsed response.
func (c *Client) GenerateContent(ctx context.Context, reqPayload GenerateContentRequest) (*GenerateContentResponse, error) {
	var out GenerateContentResponse
	if err := c.post(ctx, reqPayload.Model, "generateContent", reqPayload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CountTokens sends a countTokens request and returns the parsed response.
// The call has no side effects on the service.
func (c *Client) CountTokens(ctx context.Context, reqPayload CountTokensRequest) (*CountTokensResponse, error) {
	var out CountTokensResponse
	if err := c.post(ctx, reqPayload.Model, "countTokens", reqPayload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// post issues one model-scoped API call and decodes the response into out.
func (c *Client) post(ctx context.Context, model, method string, payload any, out any) error {
	if strings.TrimSpace(c.APIKey) == "" {
		return errors.New("missing API key")
	}
	if strings.TrimSpace(model) == "" {
		return errors.New("missing model")
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	base := strings.TrimRight(baseURL, "/")
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:%s", base, url.PathEscape(model), method)
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("key", c.APIKey)
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	httpReq.Header.Set("content-type", "application/json")
	httpReq.Header.Set("accept", "application/json")

	httpResp, err := httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		var apiErr APIError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			status := apiErr.Error.Status
			if status == "" {
				status = http.StatusText(httpResp.StatusCode)
			}
			return fmt.Errorf("gemini error (%s): %s", status, apiErr.Error.Message)
		}
		return fmt.Errorf("gemini error: status %d: %s", httpResp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
