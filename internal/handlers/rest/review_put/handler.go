package review_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/service/review"
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

	var reviewDTO dto.ReviewUpdate
	err = json.NewDecoder(r.Body).Decode(&reviewDTO)
	if err != nil {
		writeJSON(h.log, w, http.StatusBadRequest, dto.MessageResponse{Message: "Review ID and rating are required"})
		return
	}

	reviewModify := entities.ReviewModify{
		ID:      pointer.To(reviewDTO.ReviewID),
		Rating:  pointer.To(reviewDTO.Rating),
		Comment: pointer.To(reviewDTO.Comment),
	}

	err = h.service.UpdateReview(r.Context(), buyerID, reviewModify)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrMissingRequiredFields),
			errors.Is(err, review.ErrInvalidRating):
			writeJSON(h.log, w, http.StatusBadRequest, dto.MessageResponse{Message: "Review ID and rating are required"})
		case errors.Is(err, review.ErrReviewNotFound):
			writeJSON(h.log, w, http.StatusNotFound, dto.ErrorResponse{Error: "Review not found"})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("update review")
			writeJSON(h.log, w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	writeJSON(h.log, w, http.StatusOK, dto.MessageResponse{Message: "Review updated successfully"})
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
