package get_month_availability

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном месяце/годе
	// Проверяется до любых обращений к данным
	ErrInvalidRange = errors.New("invalid month range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при ошибках получения данных из хранилища
	ErrInternal = errors.New("usecase: internal error")
)
