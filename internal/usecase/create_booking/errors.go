package create_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден в каталоге
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrDuplicateBooking возвращается, когда у клиента уже есть активное
	// бронирование на эту пару слот+дата
	ErrDuplicateBooking = errors.New("create_booking: duplicate booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
