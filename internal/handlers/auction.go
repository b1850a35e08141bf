package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AuctionDetailHandler обрабатывает GET /auction/{itemId}
func (h *Handler) AuctionDetailHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		http.Error(w, "Missing itemId", http.StatusBadRequest)
		return
	}

	detail, err := h.Service.AuctionDetail(r.Context(), itemID)
	if err != nil {
		h.respondError(w, r, "AuctionDetailHandler", err, "Failed to get auction")
		return
	}

	writeJSON(w, http.StatusOK, detail)
}
