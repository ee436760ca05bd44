package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"supportagent/internal/chat"
	"supportagent/internal/observability"
)

// Responder answers a single chat turn.
type Responder interface {
	Respond(ctx context.Context, turn chat.Turn) (string, error)
}

// ChatHandler serves chat requests. A nil responder means the Gemini
// credential was absent at startup.
type ChatHandler struct {
	logger    *observability.Logger
	responder Responder
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(logger *observability.Logger, responder Responder) *ChatHandler {
	return &ChatHandler{logger: logger, responder: responder}
}

// ChatRequestDTO is the chat request body.
type ChatRequestDTO struct {
	UserMessage string `json:"user_message"`
	FileURI     string `json:"file_uri,omitempty"`
	FileName    string `json:"file_name,omitempty"`
}

// ChatResponseDTO is the chat success response body.
type ChatResponseDTO struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

// Chat handles POST /api/v1/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if h.responder == nil {
		writeError(w, http.StatusInternalServerError, errAPIKeyNotSet)
		return
	}

	var req ChatRequestDTO
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	if req.UserMessage == "" {
		writeError(w, http.StatusBadRequest, errMissingUserMessage)
		return
	}

	text, err := h.responder.Respond(r.Context(), chat.Turn{
		UserMessage: req.UserMessage,
		FileURI:     req.FileURI,
		FileName:    req.FileName,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Chat generation failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Debug().
		Bool("with_file", req.FileURI != "" && req.FileName != "").
		Int("response_chars", len(text)).
		Msg("Chat turn answered")

	writeJSON(w, http.StatusOK, ChatResponseDTO{
		Response: text,
		Status:   "success",
	})
}
