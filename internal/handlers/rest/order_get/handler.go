package order_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
		writeJSON(h.log, w, http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
		return
	}

	orderID, err := strconv.ParseInt(mux.Vars(r)["orderId"], 10, 64)
	if err != nil {
		writeJSON(h.log, w, http.StatusBadRequest, dto.ErrorResponse{Error: "Order ID not found"})
		return
	}

	orderDetail, err := h.service.GetOrder(r.Context(), buyerID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			writeJSON(h.log, w, http.StatusBadRequest, dto.ErrorResponse{Error: "Order ID not found"})
		case errors.Is(err, order.ErrOrderNotFound):
			// чужой заказ неотличим от несуществующего
			writeJSON(h.log, w, http.StatusNotFound, dto.ErrorResponse{Error: "Order not found"})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("fetch order")
			writeJSON(h.log, w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	itemDTOs := make([]dto.OrderDetailItem, len(orderDetail.Items))
	for i, item := range orderDetail.Items {
		itemDTOs[i] = dto.OrderDetailItem{
			ID:       item.ID,
			Price:    item.Price,
			Quantity: item.Quantity,
			Name:     item.ProductName,
			Images:   item.Images,
		}
	}

	response := dto.OrderResponse{
		Order: dto.OrderDetail{
			ID:              orderDetail.ID,
			DeliveryCharges: orderDetail.DeliveryCharges,
			TotalAmount:     orderDetail.TotalAmount,
			OrderStatus:     orderDetail.Status.String(),
			PaymentMethod:   orderDetail.PaymentMethod.String(),
			OrderDate:       orderDetail.OrderDate,
			DeliveryDate:    orderDetail.DeliveryDate,
			Items:           itemDTOs,
		},
		Message: "Order fetched succesfully",
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
