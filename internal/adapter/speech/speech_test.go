package speech

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()
	return zap.NewNop().Sugar()
}

func TestRecognizeLocale(t *testing.T) {
	require.Equal(t, "hi-IN", RecognizeLocale("hi"))
	require.Equal(t, "ta-IN", RecognizeLocale("ta"))
	require.Equal(t, "en-IN", RecognizeLocale("en"))
	require.Equal(t, "en-IN", RecognizeLocale("fr"), "unknown codes fall back to en-IN")
	require.Equal(t, "en-IN", RecognizeLocale(""))
}

func TestSynthesisLang(t *testing.T) {
	require.Equal(t, "hi", SynthesisLang("hi"))
	require.Equal(t, "en", SynthesisLang("en"))
	require.Equal(t, "en", SynthesisLang("fr"), "unknown codes fall back to en")
}

func TestTranscribe_NotConfigured(t *testing.T) {
	e := New(Config{}, testLogger(t))
	_, err := e.Transcribe(context.Background(), []byte("audio"), "en")
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestTranscribe_ReturnsTranscript(t *testing.T) {
	var gotLang, gotKey, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.URL.Query().Get("lang")
		gotKey = r.URL.Query().Get("key")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)

		io.WriteString(w, `{"result":[]}
{"result":[{"alternative":[{"transcript":"namaste","confidence":0.92}],"final":true}],"result_index":0}
`)
	}))
	defer srv.Close()

	e := New(Config{APIKey: "test-key", RecognizeURL: srv.URL}, testLogger(t))

	text, err := e.Transcribe(context.Background(), []byte("raw-audio"), "hi")
	require.NoError(t, err)
	require.Equal(t, "namaste", text)

	require.Equal(t, "hi-IN", gotLang)
	require.Equal(t, "test-key", gotKey)
	require.Contains(t, gotContentType, "audio/l16")
	require.Equal(t, "raw-audio", string(gotBody))
}

func TestTranscribe_EmptyTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"result":[]}`)
	}))
	defer srv.Close()

	e := New(Config{APIKey: "test-key", RecognizeURL: srv.URL}, testLogger(t))

	_, err := e.Transcribe(context.Background(), []byte("audio"), "en")
	require.ErrorIs(t, err, ErrUnrecognizedAudio)
}

func TestTranscribe_EngineError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	e := New(Config{APIKey: "test-key", RecognizeURL: srv.URL}, testLogger(t))

	_, err := e.Transcribe(context.Background(), []byte("audio"), "en")
	require.ErrorIs(t, err, ErrEngineUnavailable)
}

func TestSynthesize_NotConfigured(t *testing.T) {
	e := New(Config{}, testLogger(t))
	_, err := e.Synthesize(context.Background(), "hello", "en")
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestSynthesize_ReturnsAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "tw-ob", r.URL.Query().Get("client"))
		require.Equal(t, "hi", r.URL.Query().Get("tl"))
		require.Equal(t, "namaste", r.URL.Query().Get("q"))
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	e := New(Config{SynthesizeURL: srv.URL}, testLogger(t))

	audio, err := e.Synthesize(context.Background(), "namaste", "hi")
	require.NoError(t, err)
	require.Equal(t, "mp3-bytes", string(audio))
}

func TestSynthesize_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	e := New(Config{SynthesizeURL: srv.URL}, testLogger(t))

	_, err := e.Synthesize(context.Background(), "hello", "en")
	require.ErrorIs(t, err, ErrSynthesisFailed)
}

func TestParseTranscript(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"typical two-line response", "{\"result\":[]}\n{\"result\":[{\"alternative\":[{\"transcript\":\"hello world\"}]}]}", "hello world"},
		{"empty body", "", ""},
		{"no results", `{"result":[]}`, ""},
		{"garbage line skipped", "not-json\n{\"result\":[{\"alternative\":[{\"transcript\":\"ok\"}]}]}", "ok"},
		{"blank transcript skipped", `{"result":[{"alternative":[{"transcript":"  "},{"transcript":"second"}]}]}`, "second"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, parseTranscript([]byte(tc.raw)))
		})
	}
}
