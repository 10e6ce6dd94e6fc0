package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"plantdiary/internal/notify"
)

type ReminderHandler struct {
	Mailer notify.Mailer
}

type sendReminderReq struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendReminder delegates one outbound mail to the transport. No retries:
// a failed send is reported to the caller and nothing is queued.
func (h *ReminderHandler) SendReminder(w http.ResponseWriter, r *http.Request) {
	var req sendReminderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}

	req.To = strings.TrimSpace(req.To)
	if req.To == "" {
		writeError(w, http.StatusBadRequest, "invalid to")
		return
	}
	if _, err := mail.ParseAddress(req.To); err != nil {
		writeError(w, http.StatusBadRequest, "invalid to")
		return
	}
	if strings.TrimSpace(req.Body) == "" {
		writeError(w, http.StatusBadRequest, "empty body")
		return
	}
	if req.Subject == "" {
		req.Subject = "Plant Reminder"
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.Mailer.Send(ctx, req.To, req.Subject, req.Body); err != nil {
		writeError(w, http.StatusInternalServerError, "mail send failed")
		return
	}
	writeData(w, http.StatusOK, map[string]any{"sent": true})
}
