package gateservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gateservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("gateservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что контроллер шлагбаума недоступен и оператор должен открыть его вручную
	ErrServiceDegraded = errors.New("gateservice unavailable: graceful degradation applied")
)
