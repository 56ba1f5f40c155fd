package product_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"storefront/internal/generated/dto"
	"storefront/internal/service/product"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		writeJSON(h.log, w, http.StatusBadRequest, dto.ErrorResponse{Error: "Product ID not found"})
		return
	}

	productEntity, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrInvalidProductID):
			writeJSON(h.log, w, http.StatusBadRequest, dto.ErrorResponse{Error: "Product ID not found"})
		case errors.Is(err, product.ErrProductNotFound):
			writeJSON(h.log, w, http.StatusNotFound, dto.ErrorResponse{Error: "Product not found"})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("fetch product")
			writeJSON(h.log, w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	response := dto.ProductResponse{
		Product: dto.ProductDetail{
			ID:            productEntity.ID,
			Name:          productEntity.Name,
			Description:   productEntity.Description,
			Price:         productEntity.Price,
			StockQuantity: productEntity.StockQuantity,
			Category:      productEntity.Category,
			Images:        productEntity.Images,
			Rating:        productEntity.Rating,
			SellerName:    productEntity.SellerName,
		},
		Message: "Product fetched succesfully",
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
