package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"plantdiary/internal/auth"
	"plantdiary/internal/profile"
)

type ProfileHandler struct {
	Svc *profile.Service
}

type profileDTO struct {
	Name      string     `json:"name"`
	Image     string     `json:"image,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.EmailFromContext(r.Context())

	v, err := h.Svc.Get(r.Context(), email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeData(w, http.StatusOK, profileDTO{Name: v.Name, Image: v.Image, UpdatedAt: v.UpdatedAt})
}

type saveProfileReq struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.EmailFromContext(r.Context())

	var req saveProfileReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	v, err := h.Svc.Save(r.Context(), email, req.Name, req.Image)
	if err != nil {
		if errors.Is(err, profile.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeData(w, http.StatusOK, profileDTO{Name: v.Name, Image: v.Image, UpdatedAt: v.UpdatedAt})
}
