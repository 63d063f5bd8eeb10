package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"gifttrack/internal/gift"

	"github.com/go-chi/chi/v5"
)

type GiftsHandler struct {
	Svc *gift.Service
}

func (h *GiftsHandler) List(w http.ResponseWriter, r *http.Request) {
	f := gift.ListGiftsFilter{
		PersonID: strings.TrimSpace(r.URL.Query().Get("personId")),
		Status:   gift.Status(strings.TrimSpace(r.URL.Query().Get("status"))),
	}

	gifts, err := h.Svc.ListGifts(r.Context(), f)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, gifts)
}

func (h *GiftsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in gift.CreateGiftInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondErrorMsg(w, http.StatusBadRequest, "bad json")
		return
	}

	g, err := h.Svc.CreateGift(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, g)
}

func (h *GiftsHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.Svc.GetGift(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, g)
}

func (h *GiftsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in gift.UpdateGiftInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondErrorMsg(w, http.StatusBadRequest, "bad json")
		return
	}

	g, err := h.Svc.UpdateGift(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, g)
}

func (h *GiftsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteGift(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
