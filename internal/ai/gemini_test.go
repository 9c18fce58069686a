package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewGeminiClient("test-key", "gemini-2.5-flash")
	c.baseURL = srv.URL
	return c
}

func TestGenerate_ReturnsCandidateText(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody geminiPayload

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "<h3>Your Plan</h3>"}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	})

	got, err := c.Generate(context.Background(), "build me a plan")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "<h3>Your Plan</h3>" {
		t.Errorf("Generate() = %q, want candidate text", got)
	}

	if !strings.Contains(gotPath, "gemini-2.5-flash:generateContent") {
		t.Errorf("request path %q does not target the configured model", gotPath)
	}
	if !strings.Contains(gotPath, "key=test-key") {
		t.Errorf("request path %q missing API key parameter", gotPath)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 ||
		gotBody.Contents[0].Parts[0].Text != "build me a plan" {
		t.Errorf("request payload did not carry the prompt: %+v", gotBody)
	}
}

func TestGenerate_Non200IsError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	})

	_, err := c.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Generate() should fail on non-200 response")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error %v should carry the provider body for logging", err)
	}
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := c.Generate(context.Background(), "prompt")
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("Generate() error = %v, want ErrNoContent", err)
	}
}

func TestGenerate_ContextCancellation(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Generate(ctx, "prompt"); err == nil {
		t.Error("Generate() should fail when the context is already cancelled")
	}
}
