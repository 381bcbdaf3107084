package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/todo"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

type TodoHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TodoHandlerImpl struct {
	todoService todo.TodoService
}

func NewTodoHandler(todoService todo.TodoService) TodoHandler {
	return &TodoHandlerImpl{todoService: todoService}
}

// Create implements TodoHandler.
func (h *TodoHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq todo.CreateTodoRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.todoService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Todo created", result)
}

// List implements TodoHandler.
func (h *TodoHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.todoService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatus implements TodoHandler.
func (h *TodoHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq todo.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	statusReq.TodoID = chi.URLParam(r, "id")

	result, err := h.todoService.UpdateStatus(r.Context(), statusReq)
	if err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements TodoHandler.
func (h *TodoHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.todoService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Todo deleted", nil)
}
