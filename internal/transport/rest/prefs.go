package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

type prefsStore interface {
	DefaultLangs() (domain.LangPair, error)
	SetDefaultLangs(pair domain.LangPair) error
	PartsOfSpeech() ([]string, error)
	SetPartsOfSpeech(parts []string) error
}

type languageLister interface {
	Languages(ctx context.Context) (map[string]domain.Language, error)
}

// PrefsHandler serves language and part-of-speech preferences. None of its
// routes need an active workspace.
type PrefsHandler struct {
	prefs    prefsStore
	langs    languageLister
	fallback domain.LangPair
	log      *slog.Logger
}

// NewPrefsHandler creates a PrefsHandler. fallback is reported by
// GetDefaults until defaults are saved.
func NewPrefsHandler(prefs prefsStore, langs languageLister, fallback domain.LangPair, logger *slog.Logger) *PrefsHandler {
	return &PrefsHandler{
		prefs:    prefs,
		langs:    langs,
		fallback: fallback,
		log:      logger.With("handler", "prefs"),
	}
}

type langsRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Languages handles GET /languages/get.
func (h *PrefsHandler) Languages(w http.ResponseWriter, r *http.Request) {
	langs, err := h.langs.Languages(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, langs)
}

// GetDefaults handles GET /languages/get_defaults.
func (h *PrefsHandler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	pair, err := h.prefs.DefaultLangs()
	if errors.Is(err, domain.ErrNoData) {
		pair, err = h.fallback, nil
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, langsRequest{From: pair.From, To: pair.To})
}

// SetDefaults handles POST /languages/set_defaults.
func (h *PrefsHandler) SetDefaults(w http.ResponseWriter, r *http.Request) {
	var req langsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	pair := domain.LangPair{From: req.From, To: req.To}
	if err := h.prefs.SetDefaultLangs(pair); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// PartsOfSpeech handles GET /parts_of_speech/get.
func (h *PrefsHandler) PartsOfSpeech(w http.ResponseWriter, r *http.Request) {
	parts, err := h.prefs.PartsOfSpeech()
	if errors.Is(err, domain.ErrNoData) {
		parts, err = []string{}, nil
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, parts)
}

// SetPartsOfSpeech handles POST /parts_of_speech/set.
func (h *PrefsHandler) SetPartsOfSpeech(w http.ResponseWriter, r *http.Request) {
	var parts []string
	if err := decodeJSON(r, &parts); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.prefs.SetPartsOfSpeech(parts); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.PartsOfSpeech(w, r)
}
