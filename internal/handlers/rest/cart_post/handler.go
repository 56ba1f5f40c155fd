package cart_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/service/cart"
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
		writeJSON(h.log, w, http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized: No valid session"})
		return
	}

	var actionDTO dto.CartAction
	err = json.NewDecoder(r.Body).Decode(&actionDTO)
	if err != nil || actionDTO.Action == "" {
		writeJSON(h.log, w, http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request data"})
		return
	}

	action := entities.CartActionType(actionDTO.Action)

	// всем действиям кроме clearCart нужен товар
	if action != entities.CartClear && actionDTO.ProductID <= 0 {
		writeJSON(h.log, w, http.StatusBadRequest, dto.MessageResponse{Message: "Product ID is required"})
		return
	}

	var message string
	switch action {
	case entities.CartAddProduct:
		err = h.service.AddProduct(r.Context(), buyerID, actionDTO.ProductID)
		message = "Product added to cart"
	case entities.CartAddStock:
		err = h.service.IncrementItem(r.Context(), buyerID, actionDTO.ProductID)
		message = "Stock incremented"
	case entities.CartRemoveStock:
		err = h.service.DecrementItem(r.Context(), buyerID, actionDTO.ProductID)
		message = "Stock decremented"
	case entities.CartRemoveProduct:
		err = h.service.RemoveProduct(r.Context(), buyerID, actionDTO.ProductID)
		message = "Product removed"
	case entities.CartClear:
		err = h.service.ClearCart(r.Context(), buyerID)
		message = "Cart cleared"
	default:
		writeJSON(h.log, w, http.StatusBadRequest, dto.MessageResponse{Message: "Invalid action"})
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, cart.ErrProductNotFound):
			writeJSON(h.log, w, http.StatusNotFound, dto.MessageResponse{Message: "Product not found"})
		case errors.Is(err, cart.ErrCartItemNotFound):
			writeJSON(h.log, w, http.StatusNotFound, dto.MessageResponse{Message: "Cart item not found"})
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("action", actionDTO.Action),
			).Error("cart action")
			writeJSON(h.log, w, http.StatusInternalServerError, dto.MessageResponse{Message: "Error processing request"})
		}
		return
	}

	writeJSON(h.log, w, http.StatusOK, dto.MessageResponse{Message: message})
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
