package build_occupancy_report

import "errors"

var (
	// ErrInvalidInput возвращается при нарушении инвариантов входных данных
	// (окно или интервал с перепутанными границами). Отчет не строится
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при ошибках коллабораторов
	ErrInternal = errors.New("usecase: internal error")
)
