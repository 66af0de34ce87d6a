package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateContent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v1beta/models/gemini-2.5-pro:generateContent" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if key := r.URL.Query().Get("key"); key != "test-key" {
			t.Fatalf("expected key=test-key, got %q", key)
		}
		if got := strings.ToLower(r.Header.Get("content-type")); !strings.Contains(got, "application/json") {
			t.Fatalf("unexpected content-type: %q", got)
		}

		data, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		defer r.Body.Close()

		// Temperature zero must reach the wire; omitting it would let the
		// service pick its own default.
		if !strings.Contains(string(data), `"temperature":0`) {
			t.Fatalf("temperature missing from payload: %s", data)
		}

		var body GenerateContentRequest
		if err := json.Unmarshal(data, &body); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if len(body.Contents) != 1 || body.Contents[0].Role != "user" {
			t.Fatalf("unexpected contents: %+v", body.Contents)
		}
		if body.SystemInstruction == nil || len(body.SystemInstruction.Parts) != 1 {
			t.Fatalf("expected system instruction")
		}
		if body.GenerationConfig == nil || body.GenerationConfig.MaxOutputTokens != 16384 {
			t.Fatalf("unexpected generation config: %+v", body.GenerationConfig)
		}

		resp := GenerateContentResponse{
			ModelVersion: "gemini-2.5-pro-latest",
			UsageMetadata: &UsageMetadata{
				PromptTokenCount:     12,
				CandidatesTokenCount: 5,
				TotalTokenCount:      17,
			},
			Candidates: []Candidate{
				{
					Content:      Content{Parts: []Part{{Text: "# Title"}, {Text: "\n\nBody."}}},
					FinishReason: "STOP",
				},
			},
		}
		w.Header().Set("content-type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.BaseURL = srv.URL
	client.HTTP = srv.Client()

	req := GenerateContentRequest{
		Model:             "gemini-2.5-pro",
		Contents:          []Content{{Role: "user", Parts: []Part{{Text: "Document this repo"}}}},
		SystemInstruction: &Content{Parts: []Part{{Text: "You are a technical writer."}}},
		GenerationConfig:  &GenerationConfig{MaxOutputTokens: 16384, Temperature: 0},
	}

	resp, err := client.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if got := resp.Text(); got != "# Title\n\nBody." {
		t.Fatalf("unexpected Text: %q", got)
	}
	if resp.UsageMetadata == nil || resp.UsageMetadata.TotalTokenCount != 17 {
		t.Fatalf("unexpected usage metadata: %+v", resp.UsageMetadata)
	}
}

func TestGenerateContent_ErrorStructured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(APIError{
			Error: struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
				Status  string `json:"status"`
			}{Code: 400, Message: "Model not available", Status: "INVALID_ARGUMENT"},
		})
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.BaseURL = srv.URL
	client.HTTP = srv.Client()

	_, err := client.GenerateContent(context.Background(), GenerateContentRequest{
		Model:    "gemini-2.5-pro",
		Contents: []Content{{Parts: []Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if got := err.Error(); !strings.Contains(got, "gemini error (INVALID_ARGUMENT): Model not available") {
		t.Fatalf("unexpected error: %q", got)
	}
}

func TestGenerateContent_ErrorNonJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("server exploded"))
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.BaseURL = srv.URL
	client.HTTP = srv.Client()

	_, err := client.GenerateContent(context.Background(), GenerateContentRequest{
		Model:    "gemini-2.5-pro",
		Contents: []Content{{Parts: []Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if got := err.Error(); !strings.Contains(got, "gemini error: status 500: server exploded") {
		t.Fatalf("unexpected error: %q", got)
	}
}

func TestGenerateContent_MissingAPIKey(t *testing.T) {
	client := NewClient("")
	_, err := client.GenerateContent(context.Background(), GenerateContentRequest{
		Model:    "gemini-2.5-pro",
		Contents: []Content{{Parts: []Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Fatalf("expected error for missing API key")
	}
	if got := err.Error(); got != "missing API key" {
		t.Fatalf("unexpected error: %q", got)
	}
}

func TestGenerateContent_MissingModel(t *testing.T) {
	client := NewClient("key")
	_, err := client.GenerateContent(context.Background(), GenerateContentRequest{
		Contents: []Content{{Parts: []Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Fatalf("expected error for missing model")
	}
	if got := err.Error(); got != "missing model" {
		t.Fatalf("unexpected error: %q", got)
	}
}

func TestCountTokens_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/gemini-2.5-pro:countTokens" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if key := r.URL.Query().Get("key"); key != "test-key" {
			t.Fatalf("expected key=test-key, got %q", key)
		}

		var body CountTokensRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body.Contents) != 1 || body.Contents[0].Parts[0].Text != "count me" {
			t.Fatalf("unexpected contents: %+v", body.Contents)
		}

		w.Header().Set("content-type", "application/json")
		_ = json.NewEncoder(w).Encode(CountTokensResponse{TotalTokens: 321})
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.BaseURL = srv.URL
	client.HTTP = srv.Client()

	resp, err := client.CountTokens(context.Background(), CountTokensRequest{
		Model:    "gemini-2.5-pro",
		Contents: []Content{{Role: "user", Parts: []Part{{Text: "count me"}}}},
	})
	if err != nil {
		t.Fatalf("CountTokens: %v", err)
	}
	if resp.TotalTokens != 321 {
		t.Fatalf("unexpected total tokens: %d", resp.TotalTokens)
	}
}

func TestCountTokens_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(APIError{
			Error: struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
				Status  string `json:"status"`
			}{Code: 429, Message: "Quota exceeded", Status: "RESOURCE_EXHAUSTED"},
		})
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.BaseURL = srv.URL
	client.HTTP = srv.Client()

	_, err := client.CountTokens(context.Background(), CountTokensRequest{
		Model:    "gemini-2.5-pro",
		Contents: []Content{{Parts: []Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if got := err.Error(); !strings.Contains(got, "gemini error (RESOURCE_EXHAUSTED): Quota exceeded") {
		t.Fatalf("unexpected error: %q", got)
	}
}
