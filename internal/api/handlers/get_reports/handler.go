package get_reports

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/parkirc/parking-service/internal/api/handlers"
	"github.com/parkirc/parking-service/internal/domain"
	reportsSvc "github.com/parkirc/parking-service/internal/service/reports"
)

const (
	msgInvalidPeriod = "некорректный отчетный период"
	msgInvalidInput  = "некорректные входные данные"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleRevenue GET /api/v1/reports/revenue?startDate=&endDate=[&format=csv]
func (h *Handler) HandleRevenue(w http.ResponseWriter, r *http.Request) {
	start, end, err := parsePeriod(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/revenue - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		data, err := h.service.RevenueCSV(r.Context(), start, end)
		if err != nil {
			h.respondServiceError(w, "GET /reports/revenue", err)
			return
		}
		handlers.RespondCSV(w, "revenue-report.csv", data)
		return
	}

	report, err := h.service.Revenue(r.Context(), start, end)
	if err != nil {
		h.respondServiceError(w, "GET /reports/revenue", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// HandleOccupancy GET /api/v1/reports/occupancy?startDate=&endDate=
func (h *Handler) HandleOccupancy(w http.ResponseWriter, r *http.Request) {
	start, end, err := parsePeriod(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/occupancy - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	report, err := h.service.Occupancy(r.Context(), start, end)
	if err != nil {
		h.respondServiceError(w, "GET /reports/occupancy", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// HandleVehicleTypes GET /api/v1/reports/vehicle-types?startDate=&endDate=
func (h *Handler) HandleVehicleTypes(w http.ResponseWriter, r *http.Request) {
	start, end, err := parsePeriod(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/vehicle-types - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	report, err := h.service.VehicleTypes(r.Context(), start, end)
	if err != nil {
		h.respondServiceError(w, "GET /reports/vehicle-types", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// HandlePeakHours GET /api/v1/reports/peak-hours?startDate=&endDate=
func (h *Handler) HandlePeakHours(w http.ResponseWriter, r *http.Request) {
	start, end, err := parsePeriod(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/peak-hours - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	report, err := h.service.PeakHours(r.Context(), start, end)
	if err != nil {
		h.respondServiceError(w, "GET /reports/peak-hours", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// parsePeriod разбирает отчетный период из query-параметров.
// Даты принимаются как YYYY-MM-DD; endDate включает весь день
func parsePeriod(query url.Values) (time.Time, time.Time, error) {
	rawStart := query.Get("startDate")
	rawEnd := query.Get("endDate")
	if rawStart == "" || rawEnd == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("startDate and endDate are required")
	}

	start, err := time.Parse(domain.DateFormat, rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid startDate: %v", err)
	}

	end, err := time.Parse(domain.DateFormat, rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid endDate: %v", err)
	}
	end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("endDate is before startDate")
	}

	return start, end, nil
}

// respondServiceError транслирует ошибки сервиса в HTTP статусы
func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, reportsSvc.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Service error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
