package handlers

import (
	"fmt"
	"net/http"

	"auctionbase/internal/auction"
	"auctionbase/models"
)

type timeResponse struct {
	Time string `json:"time"`
}

type selectTimeResponse struct {
	Message string `json:"message"`
	Time    string `json:"time"`
}

// CurrTimeHandler обрабатывает GET /currtime
func (h *Handler) CurrTimeHandler(w http.ResponseWriter, r *http.Request) {
	now, err := h.Service.CurrentTime(r.Context())
	if err != nil {
		h.respondError(w, r, "CurrTimeHandler", err, "Failed to get current time")
		return
	}

	writeJSON(w, http.StatusOK, timeResponse{Time: now.Format(models.TimeLayout)})
}

// SelectTimeHandler обрабатывает POST /selecttime
func (h *Handler) SelectTimeHandler(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	in := auction.SelectTimeInput{
		Month:  formValue(r, "MM"),
		Day:    formValue(r, "dd"),
		Year:   formValue(r, "yyyy"),
		Hour:   formValue(r, "HH"),
		Minute: formValue(r, "mm"),
		Second: formValue(r, "ss"),
		Name:   formValue(r, "entername"),
	}

	selected, err := h.Service.SelectTime(r.Context(), in)
	if err != nil {
		h.respondError(w, r, "SelectTimeHandler", err, "Error ! Time was not updated.")
		return
	}

	formatted := selected.Format(models.TimeLayout)
	writeJSON(w, http.StatusOK, selectTimeResponse{
		Message: fmt.Sprintf("(Hello, %s. Previously selected time was: %s.)", in.Name, formatted),
		Time:    formatted,
	})
}
