package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/vocab-builder/internal/domain"
)

const pingTimeout = 3 * time.Second

type healthStore interface {
	Ping(ctx context.Context) error
	ListPairs(ctx context.Context) ([]domain.LangPair, error)
}

// HealthHandler serves /health, /live and /ready.
type HealthHandler struct {
	store   healthStore
	version string
	driver  string
}

func NewHealthHandler(store healthStore, version, driver string) *HealthHandler {
	return &HealthHandler{store: store, version: version, driver: driver}
}

// HealthResponse is the body of every health route.
type HealthResponse struct {
	Status    string       `json:"status"`
	Version   string       `json:"version,omitempty"`
	Store     *StoreStatus `json:"store,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// StoreStatus describes the vocabulary store as seen by /health.
type StoreStatus struct {
	Status  string   `json:"status"`
	Driver  string   `json:"driver"`
	Latency string   `json:"latency,omitempty"`
	Pairs   []string `json:"pairs,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 while the store cannot be pinged.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := h.store.Ping(ctx); err != nil {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health pings the store, lists the stored language pairs and reports the
// build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	store := &StoreStatus{Status: "ok", Driver: h.driver}
	start := time.Now()
	err := h.store.Ping(ctx)
	if err == nil {
		store.Latency = time.Since(start).String()
		var pairs []domain.LangPair
		if pairs, err = h.store.ListPairs(ctx); err == nil {
			for _, p := range pairs {
				store.Pairs = append(store.Pairs, p.String())
			}
		}
	}

	resp := HealthResponse{Status: "ok", Version: h.version, Store: store, Timestamp: time.Now()}
	code := http.StatusOK
	if err != nil {
		store.Status, resp.Status = "down", "down"
		store.Latency, store.Pairs = "", nil
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
