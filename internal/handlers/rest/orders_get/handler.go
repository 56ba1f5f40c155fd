package orders_get

import (
	"encoding/json"
	"net/http"

	"storefront/internal/generated/dto"
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
		writeJSON(h.log, w, http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	orders, err := h.service.GetOrders(r.Context(), buyerID)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("fetch orders")
		writeJSON(h.log, w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch orders"})
		return
	}

	orderDTOs := make([]dto.OrderSummary, len(orders))
	for i, summary := range orders {
		orderDTOs[i] = dto.OrderSummary{
			ID:            summary.ID,
			TotalAmount:   summary.TotalAmount,
			OrderStatus:   summary.Status.String(),
			PaymentMethod: summary.PaymentMethod.String(),
			OrderDate:     summary.OrderDate,
			DeliveryDate:  summary.DeliveryDate,
			TotalItems:    summary.TotalItems,
			Name:          summary.Address.FirstName + " " + summary.Address.LastName,
			Phone:         summary.Address.PhoneNumber,
			Email:         summary.Address.Email,
			AddressLine:   summary.Address.AddressLine,
			City:          summary.Address.City,
			State:         summary.Address.State,
			PostalCode:    summary.Address.PostalCode,
		}
	}

	response := dto.OrdersResponse{
		Orders:  orderDTOs,
		Message: "Orders fetched succesfully",
	}
	writeJSON(h.log, w, http.StatusOK, response)
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
