package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/heartmarshall/vocab-builder/internal/domain"
	"github.com/heartmarshall/vocab-builder/internal/service/impex"
	"github.com/heartmarshall/vocab-builder/internal/service/study"
	"github.com/heartmarshall/vocab-builder/internal/service/vocab"
	"github.com/heartmarshall/vocab-builder/internal/service/workspace"
)

type workspaceService interface {
	Open(ctx context.Context, in workspace.OpenInput) (*workspace.Workspace, error)
	Translate(ctx context.Context, ws *workspace.Workspace, word, fromLang, toLang string) (workspace.Translation, error)
}

type studyService interface {
	Select(ctx context.Context, sess *study.Session) (int, error)
	NextWord(sess *study.Session) (study.Card, bool)
	SetWordOrder(ctx context.Context, sess *study.Session, order domain.WordOrder) (int, error)
	SetPart(ctx context.Context, sess *study.Session, part domain.PartFilter) (int, error)
	MarkCorrect(ctx context.Context, sess *study.Session, displayed string) ([]string, error)
	Answer(ctx context.Context, sess *study.Session, displayed string) (string, error)
}

type vocabService interface {
	Load(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error)
	Count(ctx context.Context, pair domain.LangPair) (int, error)
	Merge(ctx context.Context, pair domain.LangPair, pairs []vocab.MergePair, opts vocab.MergeOptions) (vocab.MergeResult, error)
	Delete(ctx context.Context, pair domain.LangPair, headwords []string) ([]string, error)
	RestoreBackup(ctx context.Context, pair domain.LangPair) (*domain.VocabularySet, error)
}

type impexService interface {
	ImportCSV(ctx context.Context, pair domain.LangPair, r io.Reader, lookup bool) (impex.ImportResult, error)
	ImportJSON(ctx context.Context, pair domain.LangPair, r io.Reader) (int, error)
	ImportXLSX(ctx context.Context, pair domain.LangPair, r io.Reader, lookup bool) (impex.ImportResult, error)
	ExportCSV(ctx context.Context, pair domain.LangPair, w io.Writer) error
	ExportJSON(ctx context.Context, pair domain.LangPair, w io.Writer) error
	ExportXLSX(ctx context.Context, pair domain.LangPair, w io.Writer) error
}

type defaultLangsStore interface {
	DefaultLangs() (domain.LangPair, error)
}

// SessionDefaults configures workspaces opened through /init.
type SessionDefaults struct {
	Pair    domain.LangPair
	Options study.Options
	Lookup  bool
}

// VocabHandler serves the review and vocabulary endpoints. All requests
// that touch the active workspace are serialized by one mutex.
type VocabHandler struct {
	workspaces workspaceService
	study      studyService
	vocab      vocabService
	impex      impexService
	prefs      defaultLangsStore
	defaults   SessionDefaults
	log        *slog.Logger

	mu sync.Mutex
	ws *workspace.Workspace
}

// NewVocabHandler creates a VocabHandler with no active workspace.
func NewVocabHandler(
	workspaces workspaceService,
	study studyService,
	vocab vocabService,
	impex impexService,
	prefs defaultLangsStore,
	defaults SessionDefaults,
	logger *slog.Logger,
) *VocabHandler {
	return &VocabHandler{
		workspaces: workspaces,
		study:      study,
		vocab:      vocab,
		impex:      impex,
		prefs:      prefs,
		defaults:   defaults,
		log:        logger.With("handler", "vocab"),
	}
}

// withWorkspace runs fn under the workspace lock, or reports
// domain.ErrNotInitialized when /init has not succeeded yet.
func (h *VocabHandler) withWorkspace(w http.ResponseWriter, r *http.Request, fn func(ws *workspace.Workspace) error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ws == nil {
		handleError(h.log, w, r, domain.ErrNotInitialized)
		return
	}
	if err := fn(h.ws); err != nil {
		handleError(h.log, w, r, err)
	}
}

// ---------------------------------------------------------------------------
// Workspace lifecycle
// ---------------------------------------------------------------------------

// Init handles GET /init?from_lang=&to_lang=. Missing languages fall back
// to the saved defaults, then to the configured pair.
func (h *VocabHandler) Init(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := strings.TrimSpace(q.Get("from_lang")), strings.TrimSpace(q.Get("to_lang"))
	if from == "" || to == "" {
		pair := h.defaults.Pair
		if saved, err := h.prefs.DefaultLangs(); err == nil {
			pair = saved
		} else if !errors.Is(err, domain.ErrNoData) {
			h.log.WarnContext(r.Context(), "default languages unreadable", slog.String("error", err.Error()))
		}
		from, to = pair.From, pair.To
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ws, err := h.workspaces.Open(r.Context(), workspace.OpenInput{
		From:    from,
		To:      to,
		Options: h.defaults.Options,
		Lookup:  h.defaults.Lookup,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.ws = ws

	writeJSON(w, http.StatusOK, map[string]any{
		"result": "Initialized",
		"from":   ws.Meta.ValLangID,
		"to":     ws.Meta.KeyLangID,
		"count":  len(ws.Session.Selected),
	})
}

// ---------------------------------------------------------------------------
// Vocabulary
// ---------------------------------------------------------------------------

// GetAll handles GET /vocab/get_all.
func (h *VocabHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		set, err := h.vocab.Load(r.Context(), ws.Pair())
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, set)
		return nil
	})
}

// Count handles GET /vocab/count.
func (h *VocabHandler) Count(w http.ResponseWriter, r *http.Request) {
	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		n, err := h.vocab.Count(r.Context(), ws.Pair())
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, map[string]int{"count": n})
		return nil
	})
}

// Translate handles GET /vocab/translate?word=&from_lang=&to_lang=. A
// provider outage yields an empty result rather than an error.
func (h *VocabHandler) Translate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	for _, p := range []string{"word", "from_lang", "to_lang"} {
		if q.Get(p) == "" {
			writeError(w, http.StatusBadRequest, "Missing "+p+" parameter")
			return
		}
	}

	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		res, err := h.workspaces.Translate(r.Context(), ws, q.Get("word"), q.Get("from_lang"), q.Get("to_lang"))
		if errors.Is(err, domain.ErrProviderUnavailable) || errors.Is(err, domain.ErrNotFound) {
			h.log.InfoContext(r.Context(), "no translation", slog.String("word", q.Get("word")), slog.String("reason", err.Error()))
			writeJSON(w, http.StatusOK, workspace.Translation{})
			return nil
		}
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, res)
		return nil
	})
}

type addEntryRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Part string `json:"part"`
}

type mergeResponse struct {
	Added   []string `json:"added"`
	Updated []string `json:"updated"`
	Removed []string `json:"removed"`
}

// AddEntry handles POST /vocab/add_entry. "to" is the headword, "from" one
// or more comma-separated translations. The merge is always forced.
func (h *VocabHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		res, err := h.vocab.Merge(r.Context(), ws.Pair(), []vocab.MergePair{{
			Values: vocab.ParseValues(req.From),
			Key:    req.To,
			Part:   req.Part,
		}}, vocab.MergeOptions{Force: true})
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, mergeResponse{
			Added:   nonNil(res.Added),
			Updated: nonNil(res.Updated),
			Removed: nonNil(res.Removed),
		})
		return nil
	})
}

type deleteItem struct {
	Key string `json:"key"`
}

// DeleteEntry handles POST /vocab/delete_entry with [{"key": ...}] or a
// single {"key": ...}.
func (h *VocabHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items, err := decodeDeleteItems(body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	keys := make([]string, 0, len(items))
	for _, it := range items {
		keys = append(keys, it.Key)
	}

	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		deleted, err := h.vocab.Delete(r.Context(), ws.Pair(), keys)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, map[string][]string{"deleted": nonNil(deleted)})
		return nil
	})
}

func decodeDeleteItems(body []byte) ([]deleteItem, error) {
	var items []deleteItem
	if err := json.Unmarshal(body, &items); err == nil {
		return items, nil
	}
	var one deleteItem
	if err := json.Unmarshal(body, &one); err != nil {
		return nil, domain.NewValidationError("body", "expected {\"key\"} or a list of them")
	}
	return []deleteItem{one}, nil
}

// RestoreBackup handles POST /vocab/restore_backup.
func (h *VocabHandler) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		set, err := h.vocab.RestoreBackup(r.Context(), ws.Pair())
		if err != nil {
			return err
		}
		n, err := h.study.Select(r.Context(), ws.Session)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, map[string]int{"count": set.Len(), "selected": n})
		return nil
	})
}

// ---------------------------------------------------------------------------
// Review
// ---------------------------------------------------------------------------

// SelectWords handles GET /vocab/select_words.
func (h *VocabHandler) SelectWords(w http.ResponseWriter, r *http.Request) {
	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		n, err := h.study.Select(r.Context(), ws.Session)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, map[string]int{"count": n})
		return nil
	})
}

// NextWord handles GET /vocab/next_word.
func (h *VocabHandler) NextWord(w http.ResponseWriter, r *http.Request) {
	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		card, ok := h.study.NextWord(ws.Session)
		if !ok {
			writeJSON(w, http.StatusOK, map[string]bool{"done": true})
			return nil
		}
		writeJSON(w, http.StatusOK, card)
		return nil
	})
}

// Answer handles GET /vocab/answer?word=.
func (h *VocabHandler) Answer(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "Missing word parameter")
		return
	}

	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		ans, err := h.study.Answer(r.Context(), ws.Session, word)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, map[string]string{"result": ans})
		return nil
	})
}

type textRequest struct {
	Text string `json:"text"`
}

// MarkCorrect handles POST /vocab/mark_correct.
func (h *VocabHandler) MarkCorrect(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		heads, err := h.study.MarkCorrect(r.Context(), ws.Session, req.Text)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"marked":    nonNil(heads),
			"remaining": len(ws.Session.Selected),
		})
		return nil
	})
}

type valueRequest struct {
	Value string `json:"value"`
}

// SetWordOrder handles POST /vocab/set_word_order.
func (h *VocabHandler) SetWordOrder(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	order, err := domain.ParseWordOrder(req.Value)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		n, err := h.study.SetWordOrder(r.Context(), ws.Session, order)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, map[string]int{"count": n})
		return nil
	})
}

// SetPartOfSpeech handles POST /vocab/set_part_of_speech.
func (h *VocabHandler) SetPartOfSpeech(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		n, err := h.study.SetPart(r.Context(), ws.Session, domain.ParsePartFilter(req.Value))
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, map[string]int{"count": n})
		return nil
	})
}

// ---------------------------------------------------------------------------
// Import / export
// ---------------------------------------------------------------------------

// ImportCSV handles POST /vocab/import_csv?lookup=. The body is the CSV
// document. lookup defaults to the workspace setting.
func (h *VocabHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	h.importRows(w, r, h.impex.ImportCSV)
}

// ImportXLSX handles POST /vocab/import_xlsx?lookup=. The body is the
// workbook; only its first sheet is read.
func (h *VocabHandler) ImportXLSX(w http.ResponseWriter, r *http.Request) {
	h.importRows(w, r, h.impex.ImportXLSX)
}

func (h *VocabHandler) importRows(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, pair domain.LangPair, r io.Reader, lookup bool) (impex.ImportResult, error),
) {
	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		lookup := ws.Lookup
		if v := r.URL.Query().Get("lookup"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return domain.NewValidationError("lookup", "must be a boolean")
			}
			lookup = b && ws.Lookup
		}

		res, err := fn(r.Context(), ws.Pair(), r.Body, lookup)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, res)
		return nil
	})
}

// ImportJSON handles POST /vocab/import_json.
func (h *VocabHandler) ImportJSON(w http.ResponseWriter, r *http.Request) {
	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		n, err := h.impex.ImportJSON(r.Context(), ws.Pair(), r.Body)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, map[string]int{"count": n})
		return nil
	})
}

// ExportCSV handles GET /vocab/export_csv.
func (h *VocabHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "text/csv; charset=utf-8", "csv", h.impex.ExportCSV)
}

// ExportJSON handles GET /vocab/export_json.
func (h *VocabHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "application/json", "json", h.impex.ExportJSON)
}

// ExportXLSX handles GET /vocab/export_xlsx.
func (h *VocabHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx", h.impex.ExportXLSX)
}

// export renders into a buffer first so a failure can still produce an
// error status.
func (h *VocabHandler) export(
	w http.ResponseWriter,
	r *http.Request,
	contentType, ext string,
	fn func(ctx context.Context, pair domain.LangPair, w io.Writer) error,
) {
	h.withWorkspace(w, r, func(ws *workspace.Workspace) error {
		var buf bytes.Buffer
		if err := fn(r.Context(), ws.Pair(), &buf); err != nil {
			return err
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+ws.Pair().String()+`_vocab.`+ext+`"`)
		w.WriteHeader(http.StatusOK)
		buf.WriteTo(w) //nolint:errcheck
		return nil
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
