package manage_operators

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
	msgInvalidOperatorID  = "некорректный ID оператора"
	msgOperatorNotFound   = "оператор не найден"
	msgDuplicateEmail     = "оператор с таким email уже существует"
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

// HandleCreate POST /api/v1/operators
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOperatorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /operators - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateOperator(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /operators", err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/operators/{operatorId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseOperatorID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetOperator(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /operators/{operatorId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/operators
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListOperators(r.Context())
	if err != nil {
		h.respondServiceError(w, "GET /operators", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/operators/{operatorId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseOperatorID(w, r)
	if !ok {
		return
	}

	var req models.UpdateOperatorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /operators/{operatorId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateOperator(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /operators/{operatorId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/operators/{operatorId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseOperatorID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteOperator(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /operators/{operatorId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// parseOperatorID извлекает и валидирует ID оператора из пути
func (h *Handler) parseOperatorID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["operatorId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidOperatorID)
		return 0, false
	}
	return id, true
}

// respondServiceError транслирует ошибки сервиса в HTTP статусы
func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, staffSvc.ErrOperatorNotFound):
		h.logger.Warn("%s - Operator not found", op)
		handlers.RespondNotFound(w, msgOperatorNotFound)

	case errors.Is(err, staffSvc.ErrDuplicateEmail):
		h.logger.Warn("%s - Duplicate email", op)
		handlers.RespondConflict(w, msgDuplicateEmail)

	case errors.Is(err, staffSvc.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Service error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
