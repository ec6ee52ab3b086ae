package manage_spaces

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parkirc/parking-service/internal/api/handlers"
	facilitySvc "github.com/parkirc/parking-service/internal/service/facility"
	"github.com/parkirc/parking-service/internal/service/facility/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSpaceID     = "некорректный ID парковочного места"
	msgSpaceNotFound      = "парковочное место не найдено"
	msgSpaceOccupied      = "парковочное место занято"
	msgDuplicateNumber    = "место с таким номером уже существует"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/spaces
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spaces - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateSpace(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /spaces", err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/spaces/{spaceId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseSpaceID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetSpace(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /spaces/{spaceId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/spaces
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req := &models.ListSpacesRequest{
		FreeOnly: r.URL.Query().Get("freeOnly") == "true",
	}
	if spaceType := r.URL.Query().Get("spaceType"); spaceType != "" {
		req.SpaceType = &spaceType
	}

	result, err := h.service.ListSpaces(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, "GET /spaces", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/spaces/{spaceId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseSpaceID(w, r)
	if !ok {
		return
	}

	var req models.UpdateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /spaces/{spaceId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSpace(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /spaces/{spaceId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/spaces/{spaceId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseSpaceID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteSpace(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /spaces/{spaceId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// parseSpaceID извлекает и валидирует ID места из пути
func (h *Handler) parseSpaceID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["spaceId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return 0, false
	}
	return id, true
}

// respondServiceError транслирует ошибки сервиса в HTTP статусы
func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, facilitySvc.ErrSpaceNotFound):
		h.logger.Warn("%s - Space not found", op)
		handlers.RespondNotFound(w, msgSpaceNotFound)

	case errors.Is(err, facilitySvc.ErrSpaceOccupied):
		h.logger.Warn("%s - Space occupied", op)
		handlers.RespondConflict(w, msgSpaceOccupied)

	case errors.Is(err, facilitySvc.ErrDuplicateNumber):
		h.logger.Warn("%s - Duplicate space number", op)
		handlers.RespondConflict(w, msgDuplicateNumber)

	case errors.Is(err, facilitySvc.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Service error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
