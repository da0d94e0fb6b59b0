package search

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"staymate/recommender-service/internal/catalog"
)

// Handler exposes the search API over HTTP.
//
// Routes:
//
//	POST /api/recommend    → ranked recommendations for a traveler query
//	GET  /api/districts    → distinct district labels in the catalog
//	GET  /api/hotels/{id}  → one hotel by id
//	GET  /api/ping         → liveness
type Handler struct {
	svc   *Service
	store *catalog.Store
}

// NewHandler returns a configured Handler.
func NewHandler(svc *Service, store *catalog.Store) *Handler {
	return &Handler{svc: svc, store: store}
}

// RegisterRoutes mounts all search routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/recommend", h.handleRecommend)
	mux.HandleFunc("/api/districts", h.handleDistricts)
	mux.HandleFunc("/api/hotels/", h.handleHotel)
	mux.HandleFunc("/api/ping", h.handlePing)
}

func (h *Handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	resp, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			jsonError(w, ve.Msg, http.StatusBadRequest)
			return
		}
		log.Printf("[search] Recommend error: %v", err)
		jsonError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Nothing matched even after relaxation: no content, not an error.
	if len(resp.Results) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	jsonOK(w, resp)
}

func (h *Handler) handleDistricts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	jsonOK(w, h.store.Districts())
}

// handleHotel handles GET /api/hotels/{id}.
func (h *Handler) handleHotel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/hotels/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		jsonError(w, "hotel id must be an integer", http.StatusBadRequest)
		return
	}

	hotel, ok := h.store.HotelByID(id)
	if !ok {
		jsonError(w, "hotel not found", http.StatusNotFound)
		return
	}
	jsonOK(w, hotel)
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, map[string]string{"status": "ok"})
}

// ─── JSON helpers ────────────────────────────────────────────────────────────

func jsonOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[search] Encode response failed: %v", err)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
