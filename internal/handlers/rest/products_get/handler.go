package products_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"storefront/internal/generated/dto"
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
	// некорректный limit игнорируем, как и его отсутствие
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}

	products, err := h.service.GetProducts(r.Context(), limit)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("fetch products")
		writeJSON(h.log, w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch products"})
		return
	}

	productDTOs := make([]dto.Product, len(products))
	for i, productEntity := range products {
		productDTOs[i] = dto.Product{
			ID:            productEntity.ID,
			Name:          productEntity.Name,
			Description:   productEntity.Description,
			Price:         productEntity.Price,
			StockQuantity: productEntity.StockQuantity,
			Category:      productEntity.Category,
			Images:        productEntity.Images,
			Rating:        productEntity.Rating,
		}
	}

	response := dto.ProductsResponse{
		Products: productDTOs,
		Total:    len(productDTOs),
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
