package review_delete

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var reviewDTO dto.ReviewDelete
	err = json.NewDecoder(r.Body).Decode(&reviewDTO)
	if err != nil || reviewDTO.ReviewID <= 0 {
		writeJSON(h.log, w, http.StatusBadRequest, dto.MessageResponse{Message: "Review ID is required"})
		return
	}

	err = h.service.DeleteReview(r.Context(), buyerID, reviewDTO.ReviewID)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrReviewNotFound):
			writeJSON(h.log, w, http.StatusNotFound, dto.ErrorResponse{Error: "Review not found"})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("delete review")
			writeJSON(h.log, w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	writeJSON(h.log, w, http.StatusOK, dto.MessageResponse{Message: "Review soft-deleted successfully"})
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
