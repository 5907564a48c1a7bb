package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на изменение настроек
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	BusinessName         *string `json:"businessName,omitempty"`
	MaxDailyAppointments *int    `json:"maxDailyAppointments,omitempty"`
	AppointmentDuration  *int    `json:"appointmentDuration,omitempty"`
	WorkingHoursStart    *string `json:"workingHoursStart,omitempty"`
	WorkingHoursEnd      *string `json:"workingHoursEnd,omitempty"`
	BufferMinutes        *int    `json:"bufferMinutes,omitempty"`
	TelegramBotToken     *string `json:"telegramBotToken,omitempty"`
	TelegramChatID       *string `json:"telegramChatId,omitempty"`
}

// CreateOffDayRequest запрос на добавление выходного
// Для weekly обязателен DayOfWeek (0 - понедельник), для specific - Date (YYYY-MM-DD)
type CreateOffDayRequest struct {
	Type        string  `json:"type"`
	DayOfWeek   *int    `json:"dayOfWeek,omitempty"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Response модели

// SettingsResponse настройки салона
// Токен бота не возвращается, только признак того, что он задан
type SettingsResponse struct {
	BusinessName         string    `json:"businessName"`
	MaxDailyAppointments int       `json:"maxDailyAppointments"`
	AppointmentDuration  int       `json:"appointmentDuration"`
	WorkingHoursStart    string    `json:"workingHoursStart"`
	WorkingHoursEnd      string    `json:"workingHoursEnd"`
	BufferMinutes        int       `json:"bufferMinutes"`
	TelegramBotTokenSet  bool      `json:"telegramBotTokenSet"`
	TelegramChatID       string    `json:"telegramChatId"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// OffDayResponse правило выходного
type OffDayResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	DayOfWeek   *int      `json:"dayOfWeek,omitempty"`
	Date        *string   `json:"date,omitempty"`
	Description *string   `json:"description,omitempty"`
	Label       string    `json:"label"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OffDayListResponse список выходных
type OffDayListResponse struct {
	OffDays []OffDayResponse `json:"offDays"`
}

// FromDomainSettings конвертирует настройки в response
func FromDomainSettings(s *domain.SalonSettings) *SettingsResponse {
	return &SettingsResponse{
		BusinessName:         s.BusinessName,
		MaxDailyAppointments: s.MaxDailyAppointments,
		AppointmentDuration:  s.AppointmentDuration,
		WorkingHoursStart:    s.WorkingHoursStart,
		WorkingHoursEnd:      s.WorkingHoursEnd,
		BufferMinutes:        s.BufferMinutes,
		TelegramBotTokenSet:  s.TelegramBotToken != "",
		TelegramChatID:       s.TelegramChatID,
		UpdatedAt:            s.UpdatedAt,
	}
}

// FromDomainOffDay конвертирует правило выходного в response
func FromDomainOffDay(day *domain.OffDay) OffDayResponse {
	resp := OffDayResponse{
		ID:          day.ID,
		Description: day.Description,
		CreatedAt:   day.CreatedAt,
	}
	if day.Rule == nil {
		return resp
	}

	resp.Type = string(day.Rule.Kind())
	resp.Label = day.Rule.String()
	switch rule := day.Rule.(type) {
	case domain.WeeklyOffDay:
		dow := rule.DayOfWeek
		resp.DayOfWeek = &dow
	case domain.SpecificOffDay:
		date := rule.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	return resp
}

// FromDomainOffDays конвертирует список правил в response
func FromDomainOffDays(days domain.OffDays) *OffDayListResponse {
	resp := &OffDayListResponse{OffDays: make([]OffDayResponse, 0, len(days))}
	for _, day := range days {
		resp.OffDays = append(resp.OffDays, FromDomainOffDay(day))
	}
	return resp
}
