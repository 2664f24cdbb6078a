package domain

// Branch represents a physical branch where appointments take place
type Branch struct {
	ID   int64
	Name string

	// AvailableSpaces вместимость филиала (количество параллельных записей в час)
	// nil или неположительное значение - вместимость не ограничена
	AvailableSpaces *int
}

// HasCapacityLimit returns true if the branch constrains concurrent appointments
func (b *Branch) HasCapacityLimit() bool {
	return b.AvailableSpaces != nil && *b.AvailableSpaces > 0
}
