package gateservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с контроллером шлагбаума и принтером талонов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента GateService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// OpenGate отправляет команду открытия шлагбаума
func (c *Client) OpenGate(ctx context.Context, cmd GateCommand) error {
	return c.post(ctx, "/internal/gate/open", cmd)
}

// PrintTicket отправляет въездной талон на печать
func (c *Client) PrintTicket(ctx context.Context, job TicketPrintJob) error {
	return c.post(ctx, "/internal/printer/ticket", job)
}

// PrintReceipt отправляет квитанцию об оплате на печать
func (c *Client) PrintReceipt(ctx context.Context, job ReceiptPrintJob) error {
	return c.post(ctx, "/internal/printer/receipt", job)
}

// NotifyEntryWithGracefulDegradation открывает въездной шлагбаум и печатает талон.
// При недоступности контроллера возвращает ErrServiceDegraded - регистрация въезда
// уже зафиксирована, оператор открывает шлагбаум вручную
func (c *Client) NotifyEntryWithGracefulDegradation(ctx context.Context, job TicketPrintJob) error {
	c.log.Info("Notifying gate controller about entry, ticket=%s plate=%s", job.TicketNumber, job.PlateNumber)

	if err := c.OpenGate(ctx, GateCommand{Gate: "entry", PlateNumber: job.PlateNumber}); err != nil {
		c.log.Error("Gate controller unavailable on entry, applying graceful degradation for plate=%s: %v", job.PlateNumber, err)
		return fmt.Errorf("%w: plate=%s, error=%v", ErrServiceDegraded, job.PlateNumber, err)
	}

	if err := c.PrintTicket(ctx, job); err != nil {
		c.log.Error("Ticket printer unavailable, applying graceful degradation for ticket=%s: %v", job.TicketNumber, err)
		return fmt.Errorf("%w: ticket=%s, error=%v", ErrServiceDegraded, job.TicketNumber, err)
	}

	return nil
}

// NotifyExitWithGracefulDegradation открывает выездной шлагбаум и печатает квитанцию.
// При недоступности контроллера возвращает ErrServiceDegraded - оплата уже
// зафиксирована, оператор открывает шлагбаум вручную
func (c *Client) NotifyExitWithGracefulDegradation(ctx context.Context, job ReceiptPrintJob) error {
	c.log.Info("Notifying gate controller about exit, ticket=%s plate=%s", job.TicketNumber, job.PlateNumber)

	if err := c.OpenGate(ctx, GateCommand{Gate: "exit", PlateNumber: job.PlateNumber}); err != nil {
		c.log.Error("Gate controller unavailable on exit, applying graceful degradation for plate=%s: %v", job.PlateNumber, err)
		return fmt.Errorf("%w: plate=%s, error=%v", ErrServiceDegraded, job.PlateNumber, err)
	}

	if err := c.PrintReceipt(ctx, job); err != nil {
		c.log.Error("Receipt printer unavailable, applying graceful degradation for ticket=%s: %v", job.TicketNumber, err)
		return fmt.Errorf("%w: ticket=%s, error=%v", ErrServiceDegraded, job.TicketNumber, err)
	}

	return nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
