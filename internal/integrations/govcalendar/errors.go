package govcalendar

import "errors"

var (
	// ErrNegativeCount возвращается при отрицательном количестве рабочих дней
	ErrNegativeCount = errors.New("govcalendar client: working day count must not be negative")

	// ErrUnknownDivision возвращается, когда в ответе GOV.UK нет запрошенного региона
	ErrUnknownDivision = errors.New("govcalendar client: division not present in feed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("govcalendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от GOV.UK
	ErrInvalidResponse = errors.New("govcalendar client: invalid response")
)
