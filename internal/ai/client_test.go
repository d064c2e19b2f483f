package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionResponse(text string) string {
	resp := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", "")
	c.baseURL = srv.URL
	return c
}

func TestParseTask_Disabled(t *testing.T) {
	c := NewClient("", "")

	parsed, err := c.ParseTask(context.Background(), "buy milk tomorrow", time.Now())
	require.NoError(t, err)
	assert.Nil(t, parsed)

	subtasks, err := c.SuggestSubtasks(context.Background(), "buy milk")
	require.NoError(t, err)
	assert.Empty(t, subtasks)
}

func TestParseTask_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		_, _ = w.Write([]byte(completionResponse(
			`{"title":"Dentist appointment","date":"2026-03-20","priority":"HIGH","category":"HEALTH","suggestedSubtasks":["confirm time","bring insurance card"]}`)))
	})

	parsed, err := c.ParseTask(context.Background(), "dentist on the 20th, important", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, parsed)

	assert.Equal(t, "Dentist appointment", parsed.Title)
	assert.Equal(t, "2026-03-20", parsed.Date)
	assert.Equal(t, "HIGH", parsed.Priority)
	assert.Equal(t, "HEALTH", parsed.Category)
	assert.Len(t, parsed.SuggestedSubtasks, 2)
}

func TestParseTask_FencedOutput(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(completionResponse("```json\n{\"title\":\"Call mum\"}\n```")))
	})

	parsed, err := c.ParseTask(context.Background(), "call mum", time.Now())
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, "Call mum", parsed.Title)
}

func TestParseTask_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	})

	_, err := c.ParseTask(context.Background(), "anything", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestParseTask_MissingTitle(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(completionResponse(`{"priority":"LOW"}`)))
	})

	_, err := c.ParseTask(context.Background(), "anything", time.Now())
	require.Error(t, err)
}

func TestSuggestSubtasks_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(completionResponse(`["pack gym bag","fill water bottle"]`)))
	})

	subtasks, err := c.SuggestSubtasks(context.Background(), "gym session")
	require.NoError(t, err)
	assert.Equal(t, []string{"pack gym bag", "fill water bottle"}, subtasks)
}
