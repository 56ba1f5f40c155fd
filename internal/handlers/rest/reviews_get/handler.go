package reviews_get

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
	productID, err := strconv.ParseInt(r.URL.Query().Get("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		writeJSON(h.log, w, http.StatusBadRequest, dto.MessageResponse{Message: "Product ID is required"})
		return
	}

	reviews, err := h.service.GetReviews(r.Context(), productID)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("fetch reviews")
		writeJSON(h.log, w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	reviewDTOs := make([]dto.Review, len(reviews))
	for i, reviewEntity := range reviews {
		reviewDTOs[i] = dto.Review{
			ID:      reviewEntity.ID,
			Buyer:   reviewEntity.BuyerName,
			BuyerID: reviewEntity.BuyerID,
			Rating:  reviewEntity.Rating,
			Comment: reviewEntity.Comment,
		}
	}

	writeJSON(h.log, w, http.StatusOK, dto.ReviewsResponse{Reviews: reviewDTOs})
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
