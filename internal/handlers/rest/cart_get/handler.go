package cart_get

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
		writeJSON(h.log, w, http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized access"})
		return
	}

	lines, err := h.service.GetCart(r.Context(), buyerID)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("fetch cart items")
		writeJSON(h.log, w, http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to fetch cart items"})
		return
	}

	itemDTOs := make([]dto.CartItem, len(lines))
	for i, line := range lines {
		itemDTOs[i] = dto.CartItem{
			ID:            line.Product.ID,
			Name:          line.Product.Name,
			Price:         line.Product.Price,
			Quantity:      line.Quantity,
			StockQuantity: line.Product.StockQuantity,
			Image:         line.Product.Images,
			Description:   line.Product.Description,
		}
	}

	response := dto.CartResponse{
		Message: "Cart items fetched successfully",
		Items:   itemDTOs,
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
