package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocab-builder/internal/config"
	"github.com/heartmarshall/vocab-builder/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health *HealthHandler
	Prefs  *PrefsHandler
	Vocab  *VocabHandler
}

// NewRouter mounts every route behind the middleware chain. limiter guards
// the translate route; a nil limiter disables rate limiting.
func NewRouter(h Handlers, cors config.CORSConfig, limiter *middleware.RateLimiter, perMinute int, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("GET /init", h.Vocab.Init)

	mux.HandleFunc("GET /languages/get", h.Prefs.Languages)
	mux.HandleFunc("GET /languages/get_defaults", h.Prefs.GetDefaults)
	mux.HandleFunc("POST /languages/set_defaults", h.Prefs.SetDefaults)
	mux.HandleFunc("GET /parts_of_speech/get", h.Prefs.PartsOfSpeech)
	mux.HandleFunc("POST /parts_of_speech/set", h.Prefs.SetPartsOfSpeech)

	mux.HandleFunc("GET /vocab/get_all", h.Vocab.GetAll)
	mux.HandleFunc("GET /vocab/count", h.Vocab.Count)
	mux.HandleFunc("GET /vocab/select_words", h.Vocab.SelectWords)
	mux.HandleFunc("GET /vocab/next_word", h.Vocab.NextWord)
	mux.HandleFunc("GET /vocab/answer", h.Vocab.Answer)
	mux.HandleFunc("POST /vocab/add_entry", h.Vocab.AddEntry)
	mux.HandleFunc("POST /vocab/delete_entry", h.Vocab.DeleteEntry)
	mux.HandleFunc("POST /vocab/mark_correct", h.Vocab.MarkCorrect)
	mux.HandleFunc("POST /vocab/set_word_order", h.Vocab.SetWordOrder)
	mux.HandleFunc("POST /vocab/set_part_of_speech", h.Vocab.SetPartOfSpeech)
	mux.HandleFunc("POST /vocab/restore_backup", h.Vocab.RestoreBackup)
	mux.HandleFunc("POST /vocab/import_csv", h.Vocab.ImportCSV)
	mux.HandleFunc("POST /vocab/import_json", h.Vocab.ImportJSON)
	mux.HandleFunc("POST /vocab/import_xlsx", h.Vocab.ImportXLSX)
	mux.HandleFunc("GET /vocab/export_csv", h.Vocab.ExportCSV)
	mux.HandleFunc("GET /vocab/export_json", h.Vocab.ExportJSON)
	mux.HandleFunc("GET /vocab/export_xlsx", h.Vocab.ExportXLSX)

	mux.Handle("GET /vocab/translate", middleware.Chain(limiter.Limit(perMinute))(http.HandlerFunc(h.Vocab.Translate)))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cors),
	)(mux)
}
