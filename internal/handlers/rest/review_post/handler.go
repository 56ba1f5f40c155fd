package review_post

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

	var reviewDTO dto.ReviewCreate
	err = json.NewDecoder(r.Body).Decode(&reviewDTO)
	if err != nil {
		writeJSON(h.log, w, http.StatusBadRequest, dto.MessageResponse{Message: "Product ID and rating are required"})
		return
	}

	reviewModify := entities.ReviewModify{
		ProductID: pointer.To(reviewDTO.ProductID),
		Rating:    pointer.To(reviewDTO.Rating),
		Comment:   pointer.To(reviewDTO.Comment),
	}

	err = h.service.CreateReview(r.Context(), buyerID, reviewModify)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrMissingRequiredFields),
			errors.Is(err, review.ErrInvalidRating):
			writeJSON(h.log, w, http.StatusBadRequest, dto.MessageResponse{Message: "Product ID and rating are required"})
		case errors.Is(err, review.ErrProductNotFound):
			writeJSON(h.log, w, http.StatusNotFound, dto.ErrorResponse{Error: "Product not found"})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create review")
			writeJSON(h.log, w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	writeJSON(h.log, w, http.StatusCreated, dto.MessageResponse{Message: "Review created successfully"})
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
