package order_post

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/entities"
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

	var orderDTO dto.OrderCreate
	err = json.NewDecoder(r.Body).Decode(&orderDTO)
	if err != nil {
		writeJSON(h.log, w, http.StatusBadRequest, dto.ErrorResponse{Error: "Complete address details are required"})
		return
	}

	items := make([]entities.CheckoutItem, len(orderDTO.OrderItems))
	for i, itemDTO := range orderDTO.OrderItems {
		items[i] = entities.CheckoutItem{
			ProductID: itemDTO.ProductID,
			Quantity:  itemDTO.Quantity,
		}
	}

	checkout := entities.Checkout{
		Address: entities.Address{
			FirstName:   orderDTO.Address.FirstName,
			LastName:    orderDTO.Address.LastName,
			Email:       orderDTO.Address.Email,
			AddressLine: orderDTO.Address.AddressLine,
			City:        orderDTO.Address.City,
			State:       orderDTO.Address.State,
			PostalCode:  orderDTO.Address.PostalCode,
			PhoneNumber: orderDTO.Address.PhoneNumber,
		},
		Items: items,
	}

	orderID, err := h.service.PlaceOrder(r.Context(), buyerID, checkout)
	if err != nil {
		var invalidProduct *order.InvalidProductError
		switch {
		case errors.Is(err, order.ErrInvalidAddress):
			writeJSON(h.log, w, http.StatusBadRequest, dto.ErrorResponse{Error: "Complete address details are required"})
		case errors.Is(err, order.ErrEmptyOrder):
			writeJSON(h.log, w, http.StatusBadRequest, dto.ErrorResponse{Error: "Order items are required"})
		case errors.As(err, &invalidProduct):
			writeJSON(h.log, w, http.StatusBadRequest, dto.ErrorResponse{
				Error: fmt.Sprintf("Invalid product: %d", invalidProduct.ProductID),
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("place order")
			writeJSON(h.log, w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	response := dto.OrderCreateResponse{
		Message: "Order placed successfully",
		OrderID: orderID,
	}
	writeJSON(h.log, w, http.StatusCreated, response)
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
