package models

import "time"

// ListRequest запрос на получение журнала операций
type ListRequest struct {
	Action     *string    `json:"action,omitempty"` // "check_in" или "check_out"
	OperatorID *int64     `json:"operatorId,omitempty"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Limit      int        `json:"limit,omitempty"`
}

// EntryResponse запись журнала в ответе
type EntryResponse struct {
	ID          int64     `json:"id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	OperatorID  int64     `json:"operatorId"`
	Timestamp   time.Time `json:"timestamp"`
}

// ListResponse список записей журнала
type ListResponse struct {
	Entries []EntryResponse `json:"entries"`
	Total   int             `json:"total"`
}
