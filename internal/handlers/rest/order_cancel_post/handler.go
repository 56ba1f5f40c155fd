package order_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/generated/dto"
	"storefront/internal/service/order"
	"storefront/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	sessions SessionResolver
	service  Service
}

func New(log handlerLogger, sessions SessionResolver, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		sessions: sessions,
		service:  service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	buyerID, err := h.sessions.BuyerID(r)
	if err != nil {
		writeJSON(h.log, w, http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var cancelDTO dto.OrderCancel
	err = json.NewDecoder(r.Body).Decode(&cancelDTO)
	if err != nil || cancelDTO.OrderID <= 0 {
		writeJSON(h.log, w, http.StatusBadRequest, dto.ErrorResponse{Error: "Order ID is required"})
		return
	}

	err = h.service.CancelOrder(r.Context(), buyerID, cancelDTO.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			writeJSON(h.log, w, http.StatusBadRequest, dto.ErrorResponse{Error: "Order ID is required"})
		case errors.Is(err, order.ErrOrderNotFound):
			writeJSON(h.log, w, http.StatusNotFound, dto.ErrorResponse{Error: "Order not found"})
		case errors.Is(err, order.ErrOrderNotCancellable):
			writeJSON(h.log, w, http.StatusBadRequest, dto.ErrorResponse{Error: "Only pending orders can be canceled"})
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order", cancelDTO.OrderID),
			).Error("cancel order")
			writeJSON(h.log, w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	writeJSON(h.log, w, http.StatusOK, dto.MessageResponse{Message: "Order cancelled successfully"})
}

func writeJSON(log handlerLogger, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
