package feedback

import "errors"

var (
	// ErrFeedbackNotFound возвращается, когда отзыв не найден
	ErrFeedbackNotFound = errors.New("feedback: feedback not found")

	// ErrAppointmentNotFound возвращается, когда запись для отзыва не найдена
	ErrAppointmentNotFound = errors.New("feedback: appointment not found")

	// ErrAccessDenied возвращается, когда запись принадлежит другому пользователю
	ErrAccessDenied = errors.New("feedback: access denied")

	// ErrAlreadyExists возвращается при повторном отзыве на ту же запись
	ErrAlreadyExists = errors.New("feedback: feedback for appointment already exists")

	// ErrAppointmentCancelled возвращается при отзыве на отмененную запись
	ErrAppointmentCancelled = errors.New("feedback: appointment is cancelled")

	// ErrInvalidInput возвращается при некорректных данных отзыва
	ErrInvalidInput = errors.New("feedback: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("feedback: internal error")
)
