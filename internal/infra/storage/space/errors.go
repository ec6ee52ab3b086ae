package space

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда парковочное место не найдено
	ErrSpaceNotFound = errors.New("space.repository: parking space not found")

	// ErrSpaceOccupied возвращается при попытке удалить занятое место
	ErrSpaceOccupied = errors.New("space.repository: parking space is occupied")

	// ErrDuplicateNumber возвращается при создании места с существующим номером
	ErrDuplicateNumber = errors.New("space.repository: space number already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("space.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("space.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("space.repository: failed to scan row")
)
