package manage_shifts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parkirc/parking-service/internal/api/handlers"
	staffSvc "github.com/parkirc/parking-service/internal/service/staff"
	"github.com/parkirc/parking-service/internal/service/staff/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidShiftID     = "некорректный ID смены"
	msgShiftNotFound      = "смена не найдена"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/shifts
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shifts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateShift(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /shifts", err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/shifts/{shiftId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseShiftID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetShift(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /shifts/{shiftId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/shifts
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListShifts(r.Context())
	if err != nil {
		h.respondServiceError(w, "GET /shifts", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/shifts/{shiftId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseShiftID(w, r)
	if !ok {
		return
	}

	var req models.UpdateShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /shifts/{shiftId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateShift(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /shifts/{shiftId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/shifts/{shiftId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseShiftID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteShift(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /shifts/{shiftId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// parseShiftID извлекает и валидирует ID смены из пути
func (h *Handler) parseShiftID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["shiftId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return 0, false
	}
	return id, true
}

// respondServiceError транслирует ошибки сервиса в HTTP статусы
func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, staffSvc.ErrShiftNotFound):
		h.logger.Warn("%s - Shift not found", op)
		handlers.RespondNotFound(w, msgShiftNotFound)

	case errors.Is(err, staffSvc.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Service error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
