package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
)

type fakeHTTPClient struct {
	lastURL  string
	lastBody interface{}
	resp     []byte
	status   int
	err      error
}

func (f *fakeHTTPClient) Get(context.Context, string, map[string]string) ([]byte, int, error) {
	return nil, 0, errors.New("unexpected GET")
}

func (f *fakeHTTPClient) Post(_ context.Context, url string, body interface{}, _ map[string]string) ([]byte, int, error) {
	f.lastURL = url
	f.lastBody = body
	return f.resp, f.status, f.err
}

func candidateResponse(text string) []byte {
	b, _ := json.Marshal(Response{
		Candidates: []Candidate{
			{Content: Content{Parts: []Part{{Text: text}}}},
		},
	})
	return b
}

func TestNewGeminiRequiresAPIKey(t *testing.T) {
	if _, err := NewGemini(GeminiConfig{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestNewGeminiDefaults(t *testing.T) {
	client, err := NewGemini(GeminiConfig{APIKey: "k"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	impl, ok := client.(*geminiImpl)
	if !ok {
		t.Fatalf("unexpected implementation type %T", client)
	}
	if impl.model != DefaultModel {
		t.Errorf("model = %q, want %q", impl.model, DefaultModel)
	}
	if impl.maxOutputTokens != DefaultMaxOutputTokens {
		t.Errorf("maxOutputTokens = %d, want %d", impl.maxOutputTokens, DefaultMaxOutputTokens)
	}
}

func TestGenerate(t *testing.T) {
	httpClient := &fakeHTTPClient{resp: candidateResponse("polished"), status: http.StatusOK}
	g := &geminiImpl{apiKey: "k", model: "m", maxOutputTokens: 64, httpClient: httpClient}

	out, err := g.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != "polished" {
		t.Errorf("generated text = %q", out)
	}
	if !strings.Contains(httpClient.lastURL, "/m:generateContent") {
		t.Errorf("url = %q", httpClient.lastURL)
	}
	req, ok := httpClient.lastBody.(Request)
	if !ok {
		t.Fatalf("unexpected request body type %T", httpClient.lastBody)
	}
	if req.GenerationConfig == nil || req.GenerationConfig.MaxOutputTokens != 64 {
		t.Errorf("generation config not bounded: %+v", req.GenerationConfig)
	}
}

func TestGenerateNon200(t *testing.T) {
	httpClient := &fakeHTTPClient{resp: []byte("quota"), status: http.StatusTooManyRequests}
	g := &geminiImpl{apiKey: "k", model: "m", maxOutputTokens: 64, httpClient: httpClient}

	if _, err := g.Generate(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	httpClient := &fakeHTTPClient{resp: []byte(`{"candidates":[]}`), status: http.StatusOK}
	g := &geminiImpl{apiKey: "k", model: "m", maxOutputTokens: 64, httpClient: httpClient}

	if _, err := g.Generate(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}
