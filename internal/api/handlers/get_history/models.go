package get_history

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/parkirc/parking-service/internal/domain"
	"github.com/parkirc/parking-service/internal/service/history/models"
)

// parseListRequest разбирает query-параметры фильтра истории.
// Даты принимаются как YYYY-MM-DD; endDate включает весь день
func parseListRequest(query url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if plate := query.Get("plate"); plate != "" {
		req.Plate = &plate
	}
	if vehicleType := query.Get("vehicleType"); vehicleType != "" {
		req.VehicleType = &vehicleType
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
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
