package get_slot_status

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден в каталоге
	ErrSlotNotFound = errors.New("get_slot_status: slot not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_slot_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_slot_status: internal error")
)
