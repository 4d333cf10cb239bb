package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/vocab-builder/pkg/ctxutil"
)

// logOnce serves one request through Logger and decodes the access line.
func logOnce(t *testing.T, req *http.Request, h http.HandlerFunc) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger(logger)(h).ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if line["msg"] != "http.request" {
		t.Errorf("msg = %v", line["msg"])
	}
	return line
}

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		status int
		level  string
	}{
		{"ok", "/vocab/count", http.StatusOK, "INFO"},
		{"not initialized", "/vocab/next_word", http.StatusBadRequest, "WARN"},
		{"server error", "/vocab/add_entry", http.StatusInternalServerError, "ERROR"},
		{"probe", "/live", http.StatusOK, "DEBUG"},
		{"failing probe", "/ready", http.StatusServiceUnavailable, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			line := logOnce(t, httptest.NewRequest(http.MethodGet, tt.path, nil), func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			if line["level"] != tt.level {
				t.Errorf("level = %v, want %s", line["level"], tt.level)
			}
			if line["status"] != float64(tt.status) || line["path"] != tt.path {
				t.Errorf("line = %v", line)
			}
		})
	}
}

func TestLogger_Fields(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/vocab/translate?word=dog", nil)
	req = req.WithContext(ctxutil.WithRequestID(req.Context(), "req-7"))

	line := logOnce(t, req, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text":"cane"}`))
	})

	if line["status"] != float64(http.StatusOK) {
		t.Errorf("implicit status = %v, want 200", line["status"])
	}
	if line["bytes"] != float64(len(`{"text":"cane"}`)) {
		t.Errorf("bytes = %v", line["bytes"])
	}
	if line["query"] != "word=dog" || line["request_id"] != "req-7" || line["method"] != "GET" {
		t.Errorf("line = %v", line)
	}
	if _, ok := line["duration"]; !ok {
		t.Error("duration missing")
	}
}

func TestLogger_FirstStatusWins(t *testing.T) {
	t.Parallel()

	line := logOnce(t, httptest.NewRequest(http.MethodPost, "/vocab/mark_correct", nil), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)
	})

	if line["status"] != float64(http.StatusCreated) {
		t.Errorf("status = %v, want 201", line["status"])
	}
}
