package get_fee_quote

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/parkirc/parking-service/internal/api/handlers"
	getFeeQuote "github.com/parkirc/parking-service/internal/usecase/get_fee_quote"
)

const (
	msgMissingPlate      = "не указан госномер"
	msgVehicleNotParked  = "автомобиль с таким госномером не найден на парковке"
	msgNoOpenTransaction = "у автомобиля нет открытой парковочной транзакции"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	TicketNumber  string `json:"ticketNumber"`
	PlateNumber   string `json:"plateNumber"`
	VehicleType   string `json:"vehicleType"`
	SpaceNumber   string `json:"spaceNumber"`
	EntryTime     string `json:"entryTime"`
	QuotedAt      string `json:"quotedAt"`
	BillableHours int64  `json:"billableHours"`
	Amount        int64  `json:"amount"`
	Tier          string `json:"tier"`
}

type Handler struct {
	useCase GetFeeQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetFeeQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{plate}/fee-quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	plate := mux.Vars(r)["plate"]
	if plate == "" {
		handlers.RespondBadRequest(w, msgMissingPlate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFeeQuote.Request{PlateNumber: plate})
	if err != nil {
		switch {
		case errors.Is(err, getFeeQuote.ErrVehicleNotParked):
			h.logger.Warn("GET /vehicles/{plate}/fee-quote - Vehicle not parked: plate=%s", plate)
			handlers.RespondNotFound(w, msgVehicleNotParked)

		case errors.Is(err, getFeeQuote.ErrTransactionNotFound):
			h.logger.Warn("GET /vehicles/{plate}/fee-quote - No open transaction: plate=%s", plate)
			handlers.RespondNotFound(w, msgNoOpenTransaction)

		case errors.Is(err, getFeeQuote.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingPlate)

		default:
			h.logger.Error("GET /vehicles/{plate}/fee-quote - Failed to quote: plate=%s, error=%v", plate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &QuoteResponse{
		TicketNumber:  result.TicketNumber,
		PlateNumber:   result.PlateNumber,
		VehicleType:   result.VehicleType,
		SpaceNumber:   result.SpaceNumber,
		EntryTime:     result.EntryTime.Format(time.RFC3339),
		QuotedAt:      result.QuotedAt.Format(time.RFC3339),
		BillableHours: result.BillableHours,
		Amount:        result.Amount,
		Tier:          result.Tier,
	})
}
