package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"auctionbase/internal/auctionerrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// максимальный размер тела запроса
const maxBodyBytes = 1048576

// Handler оборачивает AuctionService для HTTP
type Handler struct {
	Service AuctionService
	log     logrus.FieldLogger
}

// NewHandler создает новый Handler
func NewHandler(svc AuctionService, log logrus.FieldLogger) *Handler {
	return &Handler{Service: svc, log: log}
}

// Routes регистрирует маршруты аукциона
func (h *Handler) Routes(r chi.Router) {
	r.Get("/ping", h.PingHandler)
	r.Get("/currtime", h.CurrTimeHandler)
	r.Post("/selecttime", h.SelectTimeHandler)
	r.Post("/search", h.SearchHandler)
	r.Post("/add_bid", h.AddBidHandler)
	r.Get("/auction/{itemId}", h.AuctionDetailHandler)
}

// PingHandler отвечает "ok" для проверки сервера
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseForm ограничивает тело запроса и разбирает поля формы
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return r.ParseForm()
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// mapErrorToHTTP сопоставляет доменные ошибки HTTP-статусу и сообщению для пользователя
func mapErrorToHTTP(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "Error: " + err.Error()
	case errors.Is(err, auctionerrors.ErrItemNotFound):
		return http.StatusNotFound, "Error: Invalid Item ID !"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "Error: Invalid User ID !"
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "Error: not found"
	default:
		// ошибки транзакций и прочие наружу не раскрываем
		return http.StatusInternalServerError, fallback
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, handler string, err error, fallback string) {
	status, message := mapErrorToHTTP(err, fallback)

	entry := h.log.WithFields(logrus.Fields{
		"handler":    handler,
		"request_id": middleware.GetReqID(r.Context()),
		"status":     status,
		"error":      err.Error(),
	})
	if status >= http.StatusInternalServerError {
		entry.Error(handler + ": request failed")
	} else {
		entry.Warn(handler + ": request rejected")
	}

	writeJSON(w, status, messageResponse{Message: message})
}
