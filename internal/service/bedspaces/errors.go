package bedspaces

import "errors"

var (
	// ErrBedspaceNotFound возвращается, когда койко-место не найдено
	ErrBedspaceNotFound = errors.New("bedspace not found")

	// ErrVoidNotFound возвращается, когда void-период не найден
	ErrVoidNotFound = errors.New("void not found")

	// ErrVoidReasonNotFound возвращается, когда категория void'а не найдена
	ErrVoidReasonNotFound = errors.New("void reason not found")

	// ErrVoidAlreadyCancelled возвращается при повторной отмене void'а
	ErrVoidAlreadyCancelled = errors.New("void is already cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
