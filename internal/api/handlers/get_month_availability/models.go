package get_month_availability

import (
	getMonthAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_month_availability"
)

// MonthAvailabilityResponse HTTP response model
type MonthAvailabilityResponse struct {
	BranchID      int64             `json:"branchId"`
	ServiceTypeID int64             `json:"serviceTypeId"`
	Year          int               `json:"year"`
	Month         int               `json:"month"`
	Days          []DayAvailability `json:"days"`
}

// DayAvailability модель доступности одного дня
type DayAvailability struct {
	Date                string             `json:"date"` // DD/MM/YYYY
	HaveSpace           bool               `json:"haveSpace"`
	TotalAvailableSlots int                `json:"totalAvailableSlots"`
	Hours               []HourAvailability `json:"hours"`
}

// HourAvailability модель доступности одного часа
type HourAvailability struct {
	Hour       string      `json:"hour"` // HH:MM
	HaveSpace  bool        `json:"haveSpace"`
	Count      int         `json:"count"`
	Attendants []Attendant `json:"attendants"`
}

// Attendant модель специалиста в ответе
type Attendant struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthAvailability.Response) *MonthAvailabilityResponse {
	days := make([]DayAvailability, len(resp.Days))
	for i, day := range resp.Days {
		hours := make([]HourAvailability, len(day.Hours))
		for j, hour := range day.Hours {
			attendants := make([]Attendant, len(hour.Attendants))
			for k, att := range hour.Attendants {
				attendants[k] = Attendant{ID: att.ID, Username: att.Username}
			}
			hours[j] = HourAvailability{
				Hour:       hour.Hour,
				HaveSpace:  hour.HaveSpace,
				Count:      hour.Count,
				Attendants: attendants,
			}
		}
		days[i] = DayAvailability{
			Date:                day.Date,
			HaveSpace:           day.HaveSpace,
			TotalAvailableSlots: day.TotalAvailableSlots,
			Hours:               hours,
		}
	}

	return &MonthAvailabilityResponse{
		BranchID:      resp.BranchID,
		ServiceTypeID: resp.ServiceTypeID,
		Year:          resp.Year,
		Month:         resp.Month,
		Days:          days,
	}
}
