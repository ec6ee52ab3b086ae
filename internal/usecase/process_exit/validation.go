package process_exit

import (
	"fmt"
	"strings"

	"github.com/parkirc/parking-service/internal/domain"
)

var knownPaymentMethods = map[string]struct{}{
	"cash": {},
	"card": {},
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	plate := strings.TrimSpace(req.PlateNumber)
	if plate == "" {
		return fmt.Errorf("%w: plateNumber is required", ErrInvalidInput)
	}
	if len(plate) > domain.MaxPlateNumberLength {
		return fmt.Errorf("%w: plateNumber must be at most %d characters", ErrInvalidInput, domain.MaxPlateNumberLength)
	}

	method := strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if method == "" {
		return fmt.Errorf("%w: paymentMethod is required", ErrInvalidInput)
	}
	if _, ok := knownPaymentMethods[method]; !ok {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
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
