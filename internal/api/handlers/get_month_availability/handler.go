package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getMonthAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_month_availability"
)

const (
	msgInvalidBranchID      = "некорректный ID филиала"
	msgInvalidServiceTypeID = "некорректный ID типа услуги"
	msgInvalidAttendantID   = "некорректный ID специалиста"
	msgMissingYear          = "год обязателен"
	msgInvalidYear          = "некорректный год"
	msgMissingMonth         = "месяц обязателен"
	msgInvalidMonth         = "некорректный месяц, ожидается значение от 1 до 12"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/service-types/{serviceTypeId}/availability
// Query params: year (required), month (required, 1-12), attendantId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем branchId из URL
	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/service-types/{id}/availability - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	// Извлекаем serviceTypeId из URL
	serviceTypeID, err := strconv.ParseInt(vars["serviceTypeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/service-types/{id}/availability - Invalid service type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceTypeID)
		return
	}

	// Извлекаем year из query параметров
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /branches/{id}/service-types/{id}/availability - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/service-types/{id}/availability - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	// Извлекаем month из query параметров
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /branches/{id}/service-types/{id}/availability - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/service-types/{id}/availability - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	// Извлекаем attendantId из query параметров (опционально)
	var attendantID *int64
	if attendantIDStr := r.URL.Query().Get("attendantId"); attendantIDStr != "" {
		id, err := strconv.ParseInt(attendantIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /branches/{id}/service-types/{id}/availability - Invalid attendant ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAttendantID)
			return
		}
		attendantID = &id
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getMonthAvailability.Request{
		BranchID:      branchID,
		ServiceTypeID: serviceTypeID,
		AttendantID:   attendantID,
		Year:          year,
		Month:         month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthAvailability.ErrInvalidRange):
			h.logger.Warn("GET /branches/{id}/service-types/{id}/availability - Invalid range: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getMonthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /branches/{id}/service-types/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /branches/{id}/service-types/{id}/availability - Failed to compute availability: branch_id=%d, service_type_id=%d, error=%v",
				branchID, serviceTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /branches/{id}/service-types/{id}/availability - Availability computed: branch_id=%d, service_type_id=%d, days_count=%d",
		branchID, serviceTypeID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
