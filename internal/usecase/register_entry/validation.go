package register_entry

import (
	"fmt"
	"strings"

	"github.com/parkirc/parking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	plate := strings.TrimSpace(req.PlateNumber)
	if plate == "" {
		return fmt.Errorf("%w: plateNumber is required", ErrInvalidInput)
	}
	if len(plate) > domain.MaxPlateNumberLength {
		return fmt.Errorf("%w: plateNumber must be at most %d characters", ErrInvalidInput, domain.MaxPlateNumberLength)
	}

	vehicleType := strings.TrimSpace(req.VehicleType)
	if vehicleType == "" {
		return fmt.Errorf("%w: vehicleType is required", ErrInvalidInput)
	}
	if len(vehicleType) > domain.MaxVehicleTypeLength {
		return fmt.Errorf("%w: vehicleType must be at most %d characters", ErrInvalidInput, domain.MaxVehicleTypeLength)
	}

	if req.OperatorID <= 0 {
		return fmt.Errorf("%w: operatorID must be positive", ErrInvalidInput)
	}

	return nil
}

// normalizePlate приводит госномер к каноничному виду (верхний регистр, без пробелов по краям)
func normalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
