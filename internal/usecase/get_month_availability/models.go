package get_month_availability

// Request модель запроса на расчет доступности за месяц
type Request struct {
	BranchID      int64  // ID филиала
	ServiceTypeID int64  // ID типа услуги
	AttendantID   *int64 // Опциональный фильтр по одному специалисту
	Year          int    // Целевой год
	Month         int    // Целевой месяц (1-12)
}

// Response модель ответа с доступностью по дням месяца
// Дни без покрытия расписанием в список не попадают
type Response struct {
	BranchID      int64             // ID филиала
	ServiceTypeID int64             // ID типа услуги
	Year          int               // Год расчета
	Month         int               // Месяц расчета
	Days          []DayAvailability // Дни по возрастанию даты
}

// DayAvailability доступность одного календарного дня
type DayAvailability struct {
	Date                string             // Дата в формате DD/MM/YYYY
	HaveSpace           bool               // Есть ли свободные слоты в этот день
	TotalAvailableSlots int                // Суммарное количество свободных слотов за день
	Hours               []HourAvailability // Часы по возрастанию времени
}

// HourAvailability доступность одного часового слота
type HourAvailability struct {
	Hour       string          // Время слота в формате HH:MM
	HaveSpace  bool            // Есть ли свободные места в этот час
	Count      int             // Количество свободных мест
	Attendants []AttendantInfo // Свободные специалисты (пусто, если мест нет)
}

// AttendantInfo данные специалиста в ответе
type AttendantInfo struct {
	ID       int64
	Username string
}
