package observer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hopebridge/contentsync/internal/content"
	"github.com/hopebridge/contentsync/internal/remote"
	"github.com/hopebridge/contentsync/internal/versions"
)

const maxContactBody = 64 << 10

// ContentResponse is the body of GET /v1/content
type ContentResponse struct {
	Primary      content.PrimaryDataset   `json:"primary"`
	Secondary    content.SecondaryDataset `json:"secondary"`
	LastLoadTime *time.Time               `json:"lastLoadTime,omitempty"`
}

// ContactResponse is the body of a successful POST /v1/contact
type ContactResponse struct {
	ID string `json:"id"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	ctrl    Controller
	contact ContactSink
	logger  *zap.SugaredLogger
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "healthy"}, http.StatusOK)
}

func versionHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, versions.GetVersionInfo(), http.StatusOK)
}

// readiness reports ready once there is content to render, cached or live
func (h *handlers) readiness(w http.ResponseWriter, _ *http.Request) {
	snap := h.ctrl.Snapshot()
	if !snap.HasData {
		writeError(w, "no content available", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, map[string]string{"status": "ready", "state": string(snap.State)}, http.StatusOK)
}

func (h *handlers) getState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.ctrl.Snapshot(), http.StatusOK)
}

func (h *handlers) getContent(w http.ResponseWriter, _ *http.Request) {
	snap := h.ctrl.Snapshot()
	writeJSON(w, ContentResponse{
		Primary:      snap.Primary,
		Secondary:    snap.Secondary,
		LastLoadTime: snap.LastLoadTime,
	}, http.StatusOK)
}

// The operations below keep running when the client disconnects; their outcome is still
// published through the controller.

func (h *handlers) retry(w http.ResponseWriter, r *http.Request) {
	h.ctrl.RetryConnection(context.WithoutCancel(r.Context()))
	writeJSON(w, h.ctrl.Snapshot(), http.StatusOK)
}

func (h *handlers) refresh(w http.ResponseWriter, r *http.Request) {
	h.ctrl.ForceRefreshAllData(context.WithoutCancel(r.Context()))
	writeJSON(w, h.ctrl.Snapshot(), http.StatusOK)
}

func (h *handlers) foreground(w http.ResponseWriter, r *http.Request) {
	h.ctrl.EnterForeground(context.WithoutCancel(r.Context()))
	writeJSON(w, h.ctrl.Snapshot(), http.StatusOK)
}

func (h *handlers) submitContact(w http.ResponseWriter, r *http.Request) {
	var submission content.ContactSubmission
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&submission); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.contact.SubmitContact(r.Context(), submission)
	switch {
	case err == nil:
		writeJSON(w, ContactResponse{ID: id}, http.StatusCreated)
	case errors.Is(err, remote.ErrInvalidSubmission):
		writeError(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Warnw("Failed to submit contact form", "error", err)
		if remote.IsNetworkError(err) {
			writeError(w, "content server unavailable", http.StatusBadGateway)
			return
		}
		writeError(w, "failed to submit contact form", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, ErrorResponse{Error: message}, statusCode)
}
