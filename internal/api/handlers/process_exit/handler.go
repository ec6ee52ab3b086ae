package process_exit

import (
	"errors"
	"net/http"

	"github.com/parkirc/parking-service/internal/api/handlers"
	"github.com/parkirc/parking-service/internal/api/middleware"
	processExit "github.com/parkirc/parking-service/internal/usecase/process_exit"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingOperatorID  = "отсутствует заголовок X-Operator-ID"
	msgVehicleNotParked   = "автомобиль с таким госномером не найден на парковке"
	msgNoOpenTransaction  = "у автомобиля нет открытой парковочной транзакции"
	msgInvalidInterval    = "время выезда раньше времени въезда"
	msgOperatorNotFound   = "оператор не найден"
	msgOperatorInactive   = "оператор деактивирован"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase ProcessExitUseCase
	logger  Logger
}

func NewHandler(useCase ProcessExitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/exits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetOperatorID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingOperatorID)
		return
	}

	var req ProcessExitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /exits - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(operatorID))
	if err != nil {
		switch {
		case errors.Is(err, processExit.ErrVehicleNotParked):
			h.logger.Warn("POST /exits - Vehicle not parked: plate=%s", req.PlateNumber)
			handlers.RespondNotFound(w, msgVehicleNotParked)

		case errors.Is(err, processExit.ErrTransactionNotFound):
			h.logger.Warn("POST /exits - No open transaction: plate=%s", req.PlateNumber)
			handlers.RespondNotFound(w, msgNoOpenTransaction)

		case errors.Is(err, processExit.ErrInvalidInterval):
			h.logger.Warn("POST /exits - Invalid interval: plate=%s", req.PlateNumber)
			handlers.RespondConflict(w, msgInvalidInterval)

		case errors.Is(err, processExit.ErrOperatorNotFound):
			h.logger.Warn("POST /exits - Operator not found: operator_id=%d", operatorID)
			handlers.RespondNotFound(w, msgOperatorNotFound)

		case errors.Is(err, processExit.ErrOperatorInactive):
			h.logger.Warn("POST /exits - Operator inactive: operator_id=%d", operatorID)
			handlers.RespondForbidden(w, msgOperatorInactive)

		case errors.Is(err, processExit.ErrInvalidInput):
			h.logger.Warn("POST /exits - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /exits - Failed to process exit: plate=%s, error=%v", req.PlateNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /exits - Exit processed: ticket=%s, plate=%s, amount=%d",
		result.TicketNumber, result.PlateNumber, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
