package domain

// Attendant represents a staff member qualified to serve appointments
// Квалификация на тип услуги задается связью "тип специалиста - тип услуги",
// расписание специалист получает через свой тип (ровно одно расписание)
type Attendant struct {
	ID         int64
	Username   string
	ScheduleID int64
}
