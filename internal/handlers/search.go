package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"auctionbase/internal/auction"
)

// верхняя граница limit для поиска
const maxSearchLimit = 100

type PaginationParams struct {
	Limit  int
	Offset int
}

// parsePaginationParams парсит limit и offset из формы.
// Без limit поиск возвращает все найденные лоты.
func parsePaginationParams(r *http.Request) PaginationParams {
	var params PaginationParams

	if l, err := strconv.Atoi(formValue(r, "limit")); err == nil && l > 0 {
		params.Limit = min(l, maxSearchLimit)
	}
	if o, err := strconv.Atoi(formValue(r, "offset")); err == nil && o >= 0 {
		params.Offset = o
	}
	return params
}

type searchResponse struct {
	Items   []auction.ItemSummary `json:"items"`
	Count   int                   `json:"count"`
	Message string                `json:"message"`
}

// SearchHandler обрабатывает POST /search
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	params := parsePaginationParams(r)
	in := auction.SearchInput{
		ItemID:      formValue(r, "itemID"),
		UserID:      formValue(r, "userID"),
		MinPrice:    formValue(r, "minPrice"),
		MaxPrice:    formValue(r, "maxPrice"),
		Description: formValue(r, "desc"),
		Category:    formValue(r, "category"),
		Status:      formValue(r, "status"),
		Limit:       params.Limit,
		Offset:      params.Offset,
	}

	items, err := h.Service.Search(r.Context(), in)
	if err != nil {
		h.respondError(w, r, "SearchHandler", err, "Failed to search items")
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Items:   items,
		Count:   len(items),
		Message: fmt.Sprintf("Success ! Retrieved %d results.", len(items)),
	})
}
