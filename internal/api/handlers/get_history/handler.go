package get_history

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parkirc/parking-service/internal/api/handlers"
	historySvc "github.com/parkirc/parking-service/internal/service/history"
)

const (
	msgInvalidFilter        = "некорректные параметры фильтра"
	msgInvalidTransactionID = "некорректный ID транзакции"
	msgTransactionNotFound  = "транзакция не найдена"
	exportFilename          = "parking-history.csv"
)

type Handler struct {
	service HistoryService
	logger  Logger
}

func NewHandler(service HistoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseListRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /history - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, historySvc.ErrInvalidInput) {
			h.logger.Warn("GET /history - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /history - Failed to list transactions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/history/{transactionId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["transactionId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidTransactionID)
		return
	}

	result, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, historySvc.ErrTransactionNotFound) {
			h.logger.Warn("GET /history/{transactionId} - Transaction id=%d not found", id)
			handlers.RespondNotFound(w, msgTransactionNotFound)
			return
		}
		h.logger.Error("GET /history/{transactionId} - Failed to get transaction: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleExport GET /api/v1/history/export
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	req, err := parseListRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /history/export - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	data, err := h.service.ExportCSV(r.Context(), req)
	if err != nil {
		if errors.Is(err, historySvc.ErrInvalidInput) {
			h.logger.Warn("GET /history/export - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /history/export - Failed to export: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /history/export - Exported history")
	handlers.RespondCSV(w, exportFilename, data)
}
