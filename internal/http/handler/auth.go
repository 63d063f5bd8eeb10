package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"gifttrack/internal/session"
)

type AuthHandler struct {
	Gate *session.Gate
}

type loginReq struct {
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMsg(w, http.StatusBadRequest, "bad json")
		return
	}

	token, err := h.Gate.Login(req.Password)
	if errors.Is(err, session.ErrWrongPassword) {
		respondJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"error":   "Invalid password",
		})
		return
	}
	if err != nil {
		respondErrorMsg(w, http.StatusInternalServerError, "server error")
		return
	}

	http.SetCookie(w, h.Gate.Cookie(token))
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.Gate.ClearCookie())
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
