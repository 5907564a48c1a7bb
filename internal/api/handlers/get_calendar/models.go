package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	getCalendar "github.com/m04kA/SMC-SalonService/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	From                 string        `json:"from"`
	To                   string        `json:"to"`
	MaxDailyAppointments int           `json:"maxDailyAppointments"`
	Days                 []DayResponse `json:"days"`
}

// DayResponse день календаря
type DayResponse struct {
	Date        string `json:"date"`
	Weekday     string `json:"weekday"`
	Status      string `json:"status"`
	Label       string `json:"label"`
	BookedCount int    `json:"bookedCount"`
}

// ToUseCaseRequest парсит границы диапазона
func ToUseCaseRequest(from, to string) (*getCalendar.Request, error) {
	fromDate, err := time.Parse(domain.DateFormat, from)
	if err != nil {
		return nil, err
	}
	toDate, err := time.Parse(domain.DateFormat, to)
	if err != nil {
		return nil, err
	}
	return &getCalendar.Request{From: fromDate, To: toDate}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		From:                 resp.From.Format(domain.DateFormat),
		To:                   resp.To.Format(domain.DateFormat),
		MaxDailyAppointments: resp.MaxDailyAppointments,
		Days:                 make([]DayResponse, 0, len(resp.Days)),
	}
	for _, d := range resp.Days {
		out.Days = append(out.Days, DayResponse{
			Date:        d.Date.Format(domain.DateFormat),
			Weekday:     d.Date.Weekday().String(),
			Status:      string(d.Status),
			Label:       d.Label,
			BookedCount: d.BookedCount,
		})
	}
	return out
}
