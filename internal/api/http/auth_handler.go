package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"toolrental-pos/internal/logger"
	"toolrental-pos/internal/security"
)

// AuthHandler exchanges a configured terminal API key for a bearer token.
type AuthHandler struct {
	apiKeys []string
	tokens  security.TokenManager
}

func NewAuthHandler(apiKeys []string, tokens security.TokenManager) *AuthHandler {
	return &AuthHandler{
		apiKeys: apiKeys,
		tokens:  tokens,
	}
}

type tokenRequest struct {
	TerminalID string `json:"terminal_id"`
	APIKey     string `json:"api_key"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// HandleToken issues a bearer token when the API key matches a configured
// key. Comparison is constant-time.
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TerminalID == "" {
		writeError(w, http.StatusBadRequest, "terminal_id is required")
		return
	}

	matched := false
	for _, key := range h.apiKeys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(req.APIKey)) == 1 {
			matched = true
		}
	}
	if !matched {
		logger.Warn("Token request with invalid API key", "terminal_id", req.TerminalID)
		writeError(w, http.StatusUnauthorized, "invalid API key")
		return
	}

	token, err := h.tokens.GenerateToken(req.TerminalID)
	if err != nil {
		logger.Error("Failed to generate token", "terminal_id", req.TerminalID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
