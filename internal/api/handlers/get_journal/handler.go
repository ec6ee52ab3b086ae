package get_journal

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/parkirc/parking-service/internal/api/handlers"
	"github.com/parkirc/parking-service/internal/domain"
	auditSvc "github.com/parkirc/parking-service/internal/service/audit"
	"github.com/parkirc/parking-service/internal/service/audit/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтра"
	msgInvalidInput  = "некорректные входные данные"
)

type Handler struct {
	service AuditService
	logger  Logger
}

func NewHandler(service AuditService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/journal
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseListRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /journal - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auditSvc.ErrInvalidInput):
			h.logger.Warn("GET /journal - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /journal - Service error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseListRequest разбирает query-параметры фильтра журнала.
// Даты принимаются как YYYY-MM-DD; endDate включает весь день
func parseListRequest(query url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if action := query.Get("action"); action != "" {
		req.Action = &action
	}

	if raw := query.Get("operatorId"); raw != "" {
		operatorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || operatorID <= 0 {
			return nil, fmt.Errorf("invalid operatorId: %s", raw)
		}
		req.OperatorID = &operatorID
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %v", err)
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %v", err)
		}
		endOfDay := endDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
		req.EndDate = &endOfDay
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return nil, fmt.Errorf("invalid limit: %s", raw)
		}
		req.Limit = limit
	}

	return req, nil
}
