package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
	"github.com/stafftrack/attendance-backend-go/internal/service/export"
)

type AttendanceHandler interface {
	Sign(w http.ResponseWriter, r *http.Request)
	BarcodeAuth(w http.ResponseWriter, r *http.Request)
	StatusMessage(w http.ResponseWriter, r *http.Request)
	SaveNote(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	MyRecent(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	exportService     export.ExportService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, exportService export.ExportService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
		exportService:     exportService,
	}
}

// Sign implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Sign(w http.ResponseWriter, r *http.Request) {
	var signReq attendance.SignRequest

	if err := json.NewDecoder(r.Body).Decode(&signReq); err != nil {
		slog.Error("Sign decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Sign(r.Context(), signReq)
	if err != nil {
		slog.Error("Sign service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// BarcodeAuth implements AttendanceHandler.
func (h *AttendanceHandlerImpl) BarcodeAuth(w http.ResponseWriter, r *http.Request) {
	var barcodeReq attendance.BarcodeAuthRequest

	if err := json.NewDecoder(r.Body).Decode(&barcodeReq); err != nil {
		slog.Error("BarcodeAuth decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.BarcodeAuthenticate(r.Context(), barcodeReq)
	if err != nil {
		slog.Error("BarcodeAuth service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// StatusMessage implements AttendanceHandler.
func (h *AttendanceHandlerImpl) StatusMessage(w http.ResponseWriter, r *http.Request) {
	text, signTime, ok, err := h.attendanceService.PopStatusMessage(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !ok {
		response.Success(w, nil)
		return
	}

	response.Success(w, map[string]string{
		"message":   text,
		"sign_time": signTime,
	})
}

// SaveNote implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SaveNote(w http.ResponseWriter, r *http.Request) {
	var noteReq attendance.SaveNoteRequest

	if err := json.NewDecoder(r.Body).Decode(&noteReq); err != nil {
		slog.Error("SaveNote decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.SaveNote(r.Context(), noteReq); err != nil {
		slog.Error("SaveNote service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Note saved", nil)
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyRecent implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MyRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.attendanceService.GetMyRecent(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := attendance.ListFilter{}
	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}
	if date := query.Get("date"); date != "" {
		filter.Date = &date
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Attendances, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Export implements AttendanceHandler. The format query selects the document
// type; csv is the default.
func (h *AttendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")

	var (
		buf         interface{ Bytes() []byte }
		filename    string
		contentType string
		err         error
	)

	switch format {
	case "xlsx", "excel":
		buf, filename, err = h.exportService.Excel(r.Context())
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		buf, filename, err = h.exportService.PDF(r.Context())
		contentType = "application/pdf"
	default:
		buf, filename, err = h.exportService.CSV(r.Context())
		contentType = "text/csv"
	}
	if err != nil {
		slog.Error("Export service error", "error", err, "format", format)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
