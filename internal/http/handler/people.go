package handler

import (
	"encoding/json"
	"net/http"

	"gifttrack/internal/gift"

	"github.com/go-chi/chi/v5"
)

type PeopleHandler struct {
	Svc *gift.Service
}

func (h *PeopleHandler) List(w http.ResponseWriter, r *http.Request) {
	people, err := h.Svc.ListPeople(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, people)
}

func (h *PeopleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in gift.CreatePersonInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondErrorMsg(w, http.StatusBadRequest, "bad json")
		return
	}

	p, err := h.Svc.CreatePerson(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

func (h *PeopleHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.GetPerson(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *PeopleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in gift.UpdatePersonInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondErrorMsg(w, http.StatusBadRequest, "bad json")
		return
	}

	p, err := h.Svc.UpdatePerson(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *PeopleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeletePerson(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
