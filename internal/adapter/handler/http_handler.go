package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
	"github.com/puffplace74/warehouse-bot/internal/port"
)

// HTTPHandler is a small read-only admin surface next to the bot:
// a health check and per-warehouse stock listings.
type HTTPHandler struct {
	store port.InventoryRepository
}

type stockEntry struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func NewHTTPHandler(store port.InventoryRepository) *HTTPHandler {
	return &HTTPHandler{store: store}
}

func (h *HTTPHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/health", h.health)
	r.Get("/api/stock/{warehouse}", h.stock)
	return r
}

func (h *HTTPHandler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) stock(w http.ResponseWriter, r *http.Request) {
	wh, err := domain.ParseWarehouse(chi.URLParam(r, "warehouse"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown warehouse"})
		return
	}

	products, err := h.store.Products(r.Context(), wh)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidSelection) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	out := make([]stockEntry, len(products))
	for i, rec := range products {
		out[i] = stockEntry{Name: rec.Name, Quantity: rec.Quantity}
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
