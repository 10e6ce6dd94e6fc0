package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"plantdiary/internal/auth"
	"plantdiary/internal/plant"
	"plantdiary/internal/reminder"
)

type PlantHandler struct {
	Svc *plant.Service
}

type reminderDTO struct {
	Type          string `json:"type"`
	FrequencyDays *int   `json:"frequencyDays"`
	LastCareDate  string `json:"lastCareDate,omitempty"`
}

type plantDTO struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       string       `json:"image,omitempty"`
	Reminder    *reminderDTO `json:"reminder,omitempty"`
	DateAdded   time.Time    `json:"dateAdded"`
	UpdatedAt   *time.Time   `json:"updatedAt,omitempty"`
}

type plantBodyReq struct {
	ID    string    `json:"id"`
	Plant *plantReq `json:"plant"`
}

type plantReq struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Reminder    *reminderDTO `json:"reminder"`
}

func (h *PlantHandler) List(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.EmailFromContext(r.Context())

	rows, err := h.Svc.List(r.Context(), email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	out := make([]plantDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	writeData(w, http.StatusOK, out)
}

func (h *PlantHandler) Add(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.EmailFromContext(r.Context())

	var req plantBodyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Plant == nil {
		writeError(w, http.StatusBadRequest, "plant data required")
		return
	}

	in, err := toInput(req.Plant)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.Svc.Add(r.Context(), email, *in)
	if err != nil {
		writePlantError(w, err)
		return
	}
	writeData(w, http.StatusOK, toDTO(p))
}

func (h *PlantHandler) Update(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.EmailFromContext(r.Context())

	var req plantBodyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Plant == nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "id and plant data required")
		return
	}

	in, err := toInput(req.Plant)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.Svc.Update(r.Context(), email, req.ID, *in)
	if err != nil {
		writePlantError(w, err)
		return
	}
	writeData(w, http.StatusOK, toDTO(p))
}

func (h *PlantHandler) Remove(w http.ResponseWriter, r *http.Request) {
	email, _ := auth.EmailFromContext(r.Context())

	var req plantBodyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "id required")
		return
	}

	if err := h.Svc.Remove(r.Context(), email, req.ID); err != nil {
		writePlantError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]any{"deleted": true})
}

func writePlantError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, plant.ErrInvalidInput), errors.Is(err, plant.ErrLimitExceeded):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, plant.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "server error")
	}
}

var errBadLastCareDate = errors.New("invalid lastCareDate (YYYY-MM-DD)")

func toInput(req *plantReq) (*plant.Input, error) {
	in := plant.Input{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}
	if req.Reminder != nil && req.Reminder.Type != "" {
		spec := reminder.Spec{
			Type:          req.Reminder.Type,
			FrequencyDays: req.Reminder.FrequencyDays,
		}
		if d := strings.TrimSpace(req.Reminder.LastCareDate); d != "" {
			t, err := parseCareDate(d)
			if err != nil {
				return nil, errBadLastCareDate
			}
			spec.LastCareDate = &t
		}
		in.Reminder = &spec
	}
	return &in, nil
}

// parseCareDate accepts the date-input format and RFC3339.
func parseCareDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toDTO(p *plant.Plant) plantDTO {
	dto := plantDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		DateAdded:   p.DateAdded,
		UpdatedAt:   p.UpdatedAt,
	}
	if spec := p.Reminder(); spec != nil {
		rd := reminderDTO{Type: spec.Type, FrequencyDays: spec.FrequencyDays}
		if spec.LastCareDate != nil {
			rd.LastCareDate = spec.LastCareDate.Format("2006-01-02")
		}
		dto.Reminder = &rd
	}
	return dto
}
