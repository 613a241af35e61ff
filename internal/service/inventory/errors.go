package inventory

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиция не найдена
	ErrItemNotFound = errors.New("inventory: item not found")

	// ErrInvalidInput возвращается при некорректных данных позиции
	ErrInvalidInput = errors.New("inventory: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("inventory: internal error")
)
