package auth_signout_post

import (
	"encoding/json"
	"net/http"

	"storefront/internal/generated/dto"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	tokens  TokenResolver
	service Service
}

func New(log handlerLogger, tokens TokenResolver, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		tokens:  tokens,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token, err := h.tokens.Token(r)
	if err != nil {
		writeJSON(h.log, w, http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	err = h.service.SignOut(r.Context(), token)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("sign out")
		writeJSON(h.log, w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
