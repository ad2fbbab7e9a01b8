package promote_waitlist

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись листа ожидания не найдена
	ErrEntryNotFound = errors.New("promote_waitlist: waitlist entry not found")

	// ErrSlotNotFound возвращается, когда слот записи больше не существует
	ErrSlotNotFound = errors.New("promote_waitlist: slot not found")

	// ErrSlotStillFull возвращается, когда в слоте так и нет свободного места.
	// Запись остается в листе ожидания нетронутой.
	ErrSlotStillFull = errors.New("promote_waitlist: slot is still full")

	// ErrDuplicateBooking возвращается, когда у клиента записи уже появилось
	// активное бронирование на эту пару слот+дата
	ErrDuplicateBooking = errors.New("promote_waitlist: duplicate booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("promote_waitlist: internal error")
)
