package get_slot_status

// Request модель запроса занятости одного слота на дату
type Request struct {
	SlotID int64  // ID слота
	Date   string // Дата в формате YYYY-MM-DD
}

// SlotStatus занятость слота на дату
type SlotStatus struct {
	SlotID    int64
	Date      string
	Label     string
	Capacity  int
	Occupied  int
	Available int
	State     string // disabled | full | available
	Waiting   int    // Длина очереди листа ожидания
}

// Response модель ответа для одного слота
type Response struct {
	Status *SlotStatus
}

// DayRequest модель запроса занятости всех слотов на дату
type DayRequest struct {
	Date string // Дата в формате YYYY-MM-DD
}

// DayResponse занятость всех слотов каталога на дату
type DayResponse struct {
	Date     string
	Statuses []*SlotStatus
}
