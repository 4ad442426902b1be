package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/multimodal-bug-summarizer/trainer/internal/domain"
)

const (
	serviceTitle   = "Multimodal Bug Summarizer - Trainer"
	serviceName    = "trainer"
	serviceVersion = "0.1.0"
)

// Processor turns one bug report into a final result. It is total:
// provider failures are recovered internally.
type Processor interface {
	Process(ctx context.Context, id string, rep domain.BugReport) domain.InferenceResult
}

// Handler serves the trainer's three routes.
type Handler struct {
	processor Processor
}

func NewHandler(processor Processor) *Handler {
	return &Handler{processor: processor}
}

// inferenceRequest is the POST /inference body.
type inferenceRequest struct {
	ID    string         `json:"id"`
	Input inferenceInput `json:"input"`
}

type inferenceInput struct {
	Description string         `json:"description"`
	Stacktrace  string         `json:"stacktrace_text"`
	Env         map[string]any `json:"env"`
	ImagePaths  []string       `json:"image_paths"`
}

// HandleRoot reports service identity.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": serviceTitle,
		"version": serviceVersion,
		"status":  "running",
	})
}

// HandleHealth is the liveness endpoint.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": serviceName,
	})
}

// HandleInference analyzes one bug report. The processor cannot fail;
// anything that still panics below it is caught by the Recoverer
// middleware and surfaces as a generic 500 without the caller's id.
func (h *Handler) HandleInference(w http.ResponseWriter, r *http.Request) {
	var req inferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	result := h.processor.Process(r.Context(), req.ID, domain.BugReport{
		Description: req.Input.Description,
		Stacktrace:  req.Input.Stacktrace,
		Environment: req.Input.Env,
		ImagePaths:  req.Input.ImagePaths,
	})

	AddLogField(r.Context(), "report_id", req.ID)
	AddLogField(r.Context(), "model", result.Model.Name)
	AddLogField(r.Context(), "category", result.Summary.BugCategory)

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
