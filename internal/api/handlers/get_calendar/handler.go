package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-SalonService/internal/usecase/get_calendar"
)

const (
	msgMissingRange = "параметры from и to обязательны"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "дата from не может быть позже to"
	msgRangeTooLong = "диапазон не может быть длиннее 62 дней"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: from, to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		h.logger.Warn("GET /calendar - Missing range: from=%q, to=%q", from, to)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	useCaseReq, err := ToUseCaseRequest(from, to)
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrRangeTooLong):
			h.logger.Warn("GET /calendar - Range too long: from=%s, to=%s", from, to)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid range: from=%s, to=%s", from, to)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: from=%s, to=%s, error=%v", from, to, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar built: from=%s, to=%s, days=%d", from, to, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
