package handlers

import (
	"net/http"

	"auctionbase/internal/auction"
	"auctionbase/models"

	"github.com/sirupsen/logrus"
)

type addBidResponse struct {
	Message string      `json:"message"`
	Bid     *models.Bid `json:"bid"`
}

// AddBidHandler обрабатывает POST /add_bid
func (h *Handler) AddBidHandler(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	in := auction.PlaceBidInput{
		ItemID: formValue(r, "itemID"),
		Price:  formValue(r, "price"),
		UserID: formValue(r, "userID"),
	}

	bid, err := h.Service.PlaceBid(r.Context(), in)
	if err != nil {
		h.respondError(w, r, "AddBidHandler", err, "Error ! Bid did not get added.")
		return
	}

	h.log.WithFields(logrus.Fields{
		"item_id": bid.ItemID,
		"user_id": bid.UserID,
		"amount":  bid.Amount,
	}).Info("AddBidHandler: bid recorded")

	writeJSON(w, http.StatusOK, addBidResponse{Message: "Added Bid !", Bid: bid})
}
