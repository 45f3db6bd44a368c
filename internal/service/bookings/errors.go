package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBedspaceNotFound возвращается, когда койко-место не найдено
	ErrBedspaceNotFound = errors.New("bedspace not found")

	// ErrBookingConflict возвращается, когда интервал пересекается с другим
	// бронированием или void-периодом того же койко-места
	ErrBookingConflict = errors.New("booking conflicts with an existing booking or void")

	// ErrCannotConfirm возвращается, когда бронирование нельзя подтвердить
	ErrCannotConfirm = errors.New("booking cannot be confirmed")

	// ErrCannotRecordArrival возвращается, когда заезд нельзя зафиксировать
	ErrCannotRecordArrival = errors.New("arrival cannot be recorded")

	// ErrCannotRecordDeparture возвращается, когда выезд нельзя зафиксировать
	ErrCannotRecordDeparture = errors.New("departure cannot be recorded")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
