package void

import "errors"

var (
	// ErrVoidNotFound возвращается, когда void не найден
	ErrVoidNotFound = errors.New("void.repository: void not found")

	// ErrReasonNotFound возвращается, когда категория void'а не найдена
	ErrReasonNotFound = errors.New("void.repository: void reason not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("void.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("void.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("void.repository: failed to scan row")
)
