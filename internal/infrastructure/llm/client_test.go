package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChatURL(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"https://openrouter.ai/api/v1", "https://openrouter.ai/api/v1/chat/completions"},
		{"https://openrouter.ai/api/v1/", "https://openrouter.ai/api/v1/chat/completions"},
		{"http://localhost:8080", "http://localhost:8080/v1/chat/completions"},
		{"", "https://openrouter.ai/api/v1/chat/completions"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, chatURL(tc.base), "base=%q", tc.base)
	}
}

func TestNew_MissingKey(t *testing.T) {
	_, err := New(Config{Model: "some-model"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "API key")
}

func TestNew_MissingModel(t *testing.T) {
	_, err := New(Config{APIKey: "sk-test"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "model")
}

func TestComplete_ReturnsFirstChoice(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := chatResponse{}
		resp.Choices = append(resp.Choices, struct {
			Index   int     `json:"index"`
			Message Message `json:"message"`
		}{Message: Message{Role: "assistant", Content: "  Bonjour  "}})
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL + "/v1", APIKey: "sk-test", Model: "test-model"})
	require.NoError(t, err)

	out, err := c.Complete(context.Background(), "system prompt", "user prompt", 0.3)
	require.NoError(t, err)
	require.Equal(t, "Bonjour", out, "content must be trimmed")

	require.Equal(t, "Bearer sk-test", gotAuth)
	require.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	require.Equal(t, "system", gotReq.Messages[0].Role)
	require.Equal(t, "user", gotReq.Messages[1].Role)
	require.NotNil(t, gotReq.Temperature)
	require.InDelta(t, 0.3, *gotReq.Temperature, 1e-9)
}

func TestComplete_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL + "/v1", APIKey: "sk-test", Model: "test-model"})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "", "hello", 0)
	require.Error(t, err)

	var statusErr *HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
}

func TestComplete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse{})
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL + "/v1", APIKey: "sk-test", Model: "test-model"})
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "", "hello", 0)
	require.Error(t, err)
}
