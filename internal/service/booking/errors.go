package booking

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("booking: invalid date")

	// ErrInvalidBusinessHours возвращается при нарушении инвариантов расписания
	ErrInvalidBusinessHours = errors.New("booking: invalid business hours")

	// ErrSlotsOccupied возвращается, когда перегенерация удалила бы занятые слоты
	ErrSlotsOccupied = errors.New("booking: regeneration would drop occupied slots")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("booking: appointment not found")

	// ErrInvalidTransition возвращается при недопустимой смене статуса записи
	ErrInvalidTransition = errors.New("booking: invalid status transition")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("booking: invalid status")

	// ErrStorage возвращается, когда изменения не удалось сохранить
	ErrStorage = errors.New("booking: storage error")
)
