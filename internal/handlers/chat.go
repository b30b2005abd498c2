package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"supermind-backend/internal/middleware"
	"supermind-backend/internal/models"
	"supermind-backend/internal/services"
)

// FallbackError is returned when the upstream gave nothing worth relaying.
const FallbackError = "Something went wrong. Please try again later."

const maxChatBody = 64 << 10

type chatRelay interface {
	Run(ctx context.Context, input string) (string, error)
}

type ChatHandler struct {
	relay  chatRelay
	logger zerolog.Logger
}

func NewChatHandler(relay chatRelay, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{relay: relay, logger: logger}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	log := h.logger.With().
		Str("handler", "chat").
		Str("request_id", middleware.GetRequestID(r.Context())).
		Logger()

	var req models.ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBody)).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Invalid chat request body")
		writeJSON(w, http.StatusBadRequest, models.ChatError{Error: "Invalid request body"})
		return
	}

	reply, err := h.relay.Run(r.Context(), req.InputValue)
	if err != nil {
		log.Error().Err(err).Msg("Error in /chat")
		writeJSON(w, http.StatusInternalServerError, models.ChatError{Error: errorPayload(err)})
		return
	}

	writeJSON(w, http.StatusOK, models.ChatReply{Message: reply})
}

// errorPayload surfaces the upstream error body when there is one and falls
// back to a generic message otherwise.
func errorPayload(err error) interface{} {
	var upstream *services.UpstreamError
	if errors.As(err, &upstream) {
		if payload := upstream.Payload(); payload != nil {
			return payload
		}
	}
	return FallbackError
}
