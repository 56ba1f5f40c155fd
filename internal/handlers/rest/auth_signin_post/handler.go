package auth_signin_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/service/auth"
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
	var signInDTO dto.SignInRequest
	err := json.NewDecoder(r.Body).Decode(&signInDTO)
	if err != nil {
		writeJSON(h.log, w, http.StatusBadRequest, dto.ErrorResponse{Error: "Email and name are required"})
		return
	}

	profile := entities.GoogleProfile{
		Email:      signInDTO.Email,
		Name:       signInDTO.Name,
		ProfilePic: signInDTO.ProfilePic,
	}

	session, err := h.service.SignIn(r.Context(), profile)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidProfile):
			writeJSON(h.log, w, http.StatusBadRequest, dto.ErrorResponse{Error: "Email and name are required"})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("sign in")
			writeJSON(h.log, w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	response := dto.SignInResponse{
		Token: session.Token,
		Buyer: dto.BuyerInfo{
			ID:    session.Buyer.ID,
			Name:  session.Buyer.Name,
			Email: session.Buyer.Email,
		},
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
