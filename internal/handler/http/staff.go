package http

import (
	"net/http"
	"strconv"

	"github.com/stafftrack/attendance-backend-go/internal/domain/staff"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

type StaffHandler interface {
	MyBarcode(w http.ResponseWriter, r *http.Request)
	MyBarcodePNG(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// MyBarcode implements StaffHandler.
func (h *StaffHandlerImpl) MyBarcode(w http.ResponseWriter, r *http.Request) {
	result, err := h.staffService.GetMyBarcode(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyBarcodePNG implements StaffHandler.
func (h *StaffHandlerImpl) MyBarcodePNG(w http.ResponseWriter, r *http.Request) {
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	png, err := h.staffService.GetMyBarcodePNG(r.Context(), size)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
