package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/duty"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

type DutyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type DutyHandlerImpl struct {
	dutyService duty.DutyService
}

func NewDutyHandler(dutyService duty.DutyService) DutyHandler {
	return &DutyHandlerImpl{dutyService: dutyService}
}

// Create implements DutyHandler.
func (h *DutyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq duty.CreateDutyRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.dutyService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Duty assigned", result)
}

// List implements DutyHandler.
func (h *DutyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.dutyService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatus implements DutyHandler.
func (h *DutyHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq duty.UpdateDutyStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	statusReq.DutyID = chi.URLParam(r, "id")

	result, err := h.dutyService.UpdateStatus(r.Context(), statusReq)
	if err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
