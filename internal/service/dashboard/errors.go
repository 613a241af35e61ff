package dashboard

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате отчета
	ErrInvalidDate = errors.New("dashboard: invalid date")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("dashboard: internal error")
)
