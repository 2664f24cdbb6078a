package domain

// ServiceType represents a bookable service offering
// Лимиты по периодам опциональны: nil означает, что период не ограничен
// типом услуги и действуют только общие почасовые ограничения
type ServiceType struct {
	ID   int64
	Name string

	// Disregarded = true: тип услуги исключен из учета вместимости,
	// каждый слот отдается с безлимитным количеством (sentinel)
	Disregarded bool

	MorningLimit *int
	EveningLimit *int
	NightLimit   *int
}

// HasPeriodLimits returns true if any period limit is configured
func (s *ServiceType) HasPeriodLimits() bool {
	return s.MorningLimit != nil || s.EveningLimit != nil || s.NightLimit != nil
}

// LimitFor returns the configured limit for the period (nil = unconstrained)
func (s *ServiceType) LimitFor(p Period) *int {
	switch p {
	case PeriodMorning:
		return s.MorningLimit
	case PeriodEvening:
		return s.EveningLimit
	case PeriodNight:
		return s.NightLimit
	default:
		return nil
	}
}
