package bedspace

import "errors"

var (
	// ErrBedspaceNotFound возвращается, когда койко-место не найдено
	ErrBedspaceNotFound = errors.New("bedspace.repository: bedspace not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bedspace.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bedspace.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bedspace.repository: failed to scan row")
)
