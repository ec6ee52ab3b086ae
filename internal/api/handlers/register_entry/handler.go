package register_entry

import (
	"errors"
	"net/http"

	"github.com/parkirc/parking-service/internal/api/handlers"
	"github.com/parkirc/parking-service/internal/api/middleware"
	registerEntry "github.com/parkirc/parking-service/internal/usecase/register_entry"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingOperatorID  = "отсутствует заголовок X-Operator-ID"
	msgAlreadyParked      = "автомобиль с таким госномером уже на парковке"
	msgNoSpaceAvailable   = "нет свободных мест для данной категории транспорта"
	msgOperatorNotFound   = "оператор не найден"
	msgOperatorInactive   = "оператор деактивирован"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase RegisterEntryUseCase
	logger  Logger
}

func NewHandler(useCase RegisterEntryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/entries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetOperatorID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingOperatorID)
		return
	}

	var req RegisterEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /entries - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(operatorID))
	if err != nil {
		switch {
		case errors.Is(err, registerEntry.ErrVehicleAlreadyParked):
			h.logger.Warn("POST /entries - Vehicle already parked: plate=%s", req.PlateNumber)
			handlers.RespondConflict(w, msgAlreadyParked)

		case errors.Is(err, registerEntry.ErrNoSpaceAvailable):
			h.logger.Warn("POST /entries - No space available: type=%s", req.VehicleType)
			handlers.RespondConflict(w, msgNoSpaceAvailable)

		case errors.Is(err, registerEntry.ErrOperatorNotFound):
			h.logger.Warn("POST /entries - Operator not found: operator_id=%d", operatorID)
			handlers.RespondNotFound(w, msgOperatorNotFound)

		case errors.Is(err, registerEntry.ErrOperatorInactive):
			h.logger.Warn("POST /entries - Operator inactive: operator_id=%d", operatorID)
			handlers.RespondForbidden(w, msgOperatorInactive)

		case errors.Is(err, registerEntry.ErrInvalidInput):
			h.logger.Warn("POST /entries - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /entries - Failed to register entry: plate=%s, error=%v", req.PlateNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /entries - Entry registered: ticket=%s, plate=%s, space=%s",
		result.TicketNumber, result.PlateNumber, result.SpaceNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
