package promote_waitlist

import "time"

// Request модель запроса на продвижение записи листа ожидания
type Request struct {
	EntryID int64 // ID записи листа ожидания
}

// Response модель ответа с созданным из записи бронированием
type Response struct {
	BookingID    int64
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
	CreatedAt    time.Time
}
