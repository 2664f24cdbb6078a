package get_month_availability

import "fmt"

// validateRequest валидирует входные данные запроса
// Диапазон месяца проверяется отдельно в newMonthRange
func validateRequest(req *Request) error {
	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if req.ServiceTypeID <= 0 {
		return fmt.Errorf("%w: serviceTypeID must be positive", ErrInvalidInput)
	}

	if req.Year <= 0 {
		return fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	if req.AttendantID != nil && *req.AttendantID <= 0 {
		return fmt.Errorf("%w: attendantID must be positive", ErrInvalidInput)
	}

	return nil
}
