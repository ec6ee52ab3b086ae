package manage_rates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parkirc/parking-service/internal/api/handlers"
	ratesSvc "github.com/parkirc/parking-service/internal/service/rates"
	"github.com/parkirc/parking-service/internal/service/rates/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidScheduleID  = "некорректный ID тарифной сетки"
	msgScheduleNotFound   = "тарифная сетка не найдена"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	service RatesService
	logger  Logger
}

func NewHandler(service RatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/rates
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateSchedule(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /rates", err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/rates/{rateId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseScheduleID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetSchedule(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /rates/{rateId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/rates
// При ?vehicleType=... возвращает только действующие сетки категории
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var (
		result *models.ScheduleListResponse
		err    error
	)

	if vehicleType := r.URL.Query().Get("vehicleType"); vehicleType != "" {
		result, err = h.service.ListEffectiveSchedules(r.Context(), vehicleType)
	} else {
		result, err = h.service.ListSchedules(r.Context())
	}

	if err != nil {
		h.respondServiceError(w, "GET /rates", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/rates/{rateId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseScheduleID(w, r)
	if !ok {
		return
	}

	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rates/{rateId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSchedule(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /rates/{rateId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/rates/{rateId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseScheduleID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteSchedule(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /rates/{rateId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// parseScheduleID извлекает и валидирует ID сетки из пути
func (h *Handler) parseScheduleID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["rateId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return 0, false
	}
	return id, true
}

// respondServiceError транслирует ошибки сервиса в HTTP статусы
func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ratesSvc.ErrScheduleNotFound):
		h.logger.Warn("%s - Schedule not found", op)
		handlers.RespondNotFound(w, msgScheduleNotFound)

	case errors.Is(err, ratesSvc.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Service error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
