package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	Name      string // Имя клиента
	Email     string // Email клиента
	Phone     string // Телефон клиента
	SlotID    int64  // ID слота
	ServiceID int64  // ID услуги
	Date      string // Дата в формате YYYY-MM-DD

	PhoneVerified bool   // Телефон подтвержден
	Notes         string // Дополнительные заметки
	Source        string // Канал заявки (по умолчанию "web")
	Priority      int    // Приоритет для ручной сортировки
}

// Response модель ответа. Waitlisted указывает, что заявка ушла в лист
// ожидания вместо активного набора; заполнена ровно одна из двух секций.
type Response struct {
	Waitlisted bool

	Booking  *BookingData
	Waitlist *WaitlistData
}

// BookingData принятое бронирование
type BookingData struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	SlotID       int64
	Date         string
	SlotKey      string
	Status       string
	ServiceID    int64
	ServiceName  string
	ServicePrice float64
	Notes        string
	Source       string
	CreatedAt    time.Time
}

// WaitlistData запись листа ожидания
type WaitlistData struct {
	ID       int64
	Name     string
	Email    string
	Phone    string
	SlotID   int64
	Date     string
	Position int // Позиция в очереди FIFO, начиная с 1
	AddedAt  time.Time
}
