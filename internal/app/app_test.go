package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/heartmarshall/vocab-builder/internal/adapter/provider/translate"
	"github.com/heartmarshall/vocab-builder/internal/config"
	"github.com/heartmarshall/vocab-builder/internal/domain"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 5000, ShutdownTimeout: time.Second},
		Storage: config.StorageConfig{Driver: driver, DataDir: t.TempDir()},
		Study: config.StudyConfig{
			FromLang:           "en",
			ToLang:             "it",
			MinCorrect:         5,
			MinAgeDays:         15,
			WordOrderRaw:       "to-from",
			ServerWordOrderRaw: "from-to",
			PartOfSpeechRaw:    "Any",
		},
		Translator: config.TranslatorConfig{
			Endpoint:           "http://127.0.0.1:1",
			Timeout:            time.Second,
			RateLimitPerMinute: 30,
		},
		CORS:   config.CORSConfig{AllowedOrigins: "*"},
		Backup: config.BackupConfig{Enabled: false},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuild_FileDriver(t *testing.T) {
	cfg := testConfig(t, config.DriverFile)

	c, err := Build(context.Background(), cfg, discardLogger())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer c.Close()

	if _, ok := c.Provider.(*translate.Disabled); !ok {
		t.Errorf("provider = %T, want *translate.Disabled without an api key", c.Provider)
	}

	// Bundled preferences land in the data directory on first build.
	if _, err := os.Stat(filepath.Join(cfg.Storage.DataDir, "parts_of_speech.json")); err != nil {
		t.Errorf("initial data not copied: %v", err)
	}

	rec := httptest.NewRecorder()
	c.Handler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/ready status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestBuild_SQLiteDriver(t *testing.T) {
	cfg := testConfig(t, config.DriverSQLite)

	c, err := Build(context.Background(), cfg, discardLogger())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	pair := domain.LangPair{From: "en", To: "it"}
	if _, err := c.Vocab.InitializeIfAbsent(ctx, domain.NewMeta(pair, "English", "Italian")); err != nil {
		t.Fatalf("InitializeIfAbsent: %v", err)
	}
	if _, err := os.Stat(cfg.Storage.SQLitePath); err != nil {
		t.Errorf("sqlite file missing: %v", err)
	}
}

func TestHandler_InitUsesServerWordOrder(t *testing.T) {
	cfg := testConfig(t, config.DriverFile)

	c, err := Build(context.Background(), cfg, discardLogger())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer c.Close()

	h := c.Handler(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/init?from_lang=en&to_lang=it", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/init status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/vocab/set_word_order",
		jsonBody(t, map[string]string{"value": "nonsense"})))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad word order status = %d", rec.Code)
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	cfg := testConfig(t, config.DriverFile)
	cfg.Server.Port = freePort(t)
	cfg.Backup = config.BackupConfig{Enabled: true, SnapshotInterval: time.Hour, SnapshotKeep: 1}

	c, err := Build(context.Background(), cfg, discardLogger())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Serve(ctx) }()

	url := "http://" + cfg.Server.Host + ":" + itoa(cfg.Server.Port) + "/live"
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not come up: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
