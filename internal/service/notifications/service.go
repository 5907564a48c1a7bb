package notifications

import (
	"context"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// DefaultTimeout ограничение на отправку уведомлений одного события
const DefaultTimeout = 10 * time.Second

// Options значения из файла конфигурации
// Используются, если в настройках салона токен или канал не заданы
type Options struct {
	BotToken    string
	AdminChatID string
	Timeout     time.Duration
}

// Service форматирует и отправляет уведомления
// Отправка выполняется после фиксации транзакции: ошибки логируются и не влияют на результат операции
type Service struct {
	settingsRepo SettingsRepository
	sender       Sender
	metrics      Metrics
	opts         Options
	logger       Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	settingsRepo SettingsRepository,
	sender Sender,
	metrics Metrics,
	opts Options,
	logger Logger,
) *Service {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Service{
		settingsRepo: settingsRepo,
		sender:       sender,
		metrics:      metrics,
		opts:         opts,
		logger:       logger,
	}
}

type recipient int

const (
	toCustomer recipient = iota
	toAdmin
)

type message struct {
	to     recipient
	chatID string
	text   string
}

func customerMessage(c *domain.Customer, text string) message {
	return message{to: toCustomer, chatID: c.NotificationHandle(), text: text}
}

func adminMessage(text string) message {
	return message{to: toAdmin, text: text}
}

// BookingConfirmed уведомляет клиента и администратора о новой записи
func (s *Service) BookingConfirmed(ctx context.Context, c *domain.Customer, apt *domain.Appointment) {
	s.dispatch(ctx, "BookingConfirmed",
		customerMessage(c, bookingConfirmedText(c, apt)),
		adminMessage(bookingConfirmedAdminText(c, apt)),
	)
}

// BookingCancelled уведомляет клиента и администратора об отмене
func (s *Service) BookingCancelled(ctx context.Context, c *domain.Customer, apt *domain.Appointment, refund domain.Refund) {
	s.dispatch(ctx, "BookingCancelled",
		customerMessage(c, bookingCancelledText(apt, refund)),
		adminMessage(bookingCancelledAdminText(c, apt, refund)),
	)
}

// AppointmentCompleted уведомляет клиента о завершении записи и начисленных баллах
func (s *Service) AppointmentCompleted(ctx context.Context, c *domain.Customer, apt *domain.Appointment, reward int) {
	s.dispatch(ctx, "AppointmentCompleted", customerMessage(c, appointmentCompletedText(apt, reward)))
}

// ReferralBonus уведомляет пригласившего о бонусе
func (s *Service) ReferralBonus(ctx context.Context, referrer *domain.Customer, reward int) {
	s.dispatch(ctx, "ReferralBonus", customerMessage(referrer, referralBonusText(reward)))
}

// PointsUpdated уведомляет клиента о ручном изменении баланса
func (s *Service) PointsUpdated(ctx context.Context, c *domain.Customer, entry *domain.PointsHistory) {
	s.dispatch(ctx, "PointsUpdated", customerMessage(c, pointsUpdatedText(entry)))
}

// NewReferral уведомляет пригласившего о регистрации по его коду
func (s *Service) NewReferral(ctx context.Context, referrer, newcomer *domain.Customer) {
	s.dispatch(ctx, "NewReferral", customerMessage(referrer, newReferralText(newcomer)))
}

// NewCustomer уведомляет администратора о новом клиенте
func (s *Service) NewCustomer(ctx context.Context, c *domain.Customer) {
	s.dispatch(ctx, "NewCustomer", adminMessage(newCustomerAdminText(c)))
}

func (s *Service) dispatch(ctx context.Context, event string, messages ...message) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.Timeout)
	defer cancel()

	token, adminChat := s.credentials(ctx)
	if token == "" {
		s.logger.Warn("Notify %s: bot token is not configured, skipping", event)
		return
	}

	for _, msg := range messages {
		chatID := msg.chatID
		if msg.to == toAdmin {
			chatID = adminChat
		}
		if chatID == "" {
			continue
		}

		err := s.sender.Send(ctx, token, chatID, msg.text)
		s.metrics.NotificationSent(err == nil)
		if err != nil {
			s.logger.Error("Notify %s: failed to send to chat=%s: %v", event, chatID, err)
			continue
		}
		s.logger.Info("Notify %s: sent to chat=%s", event, chatID)
	}
}

// credentials токен и канал администратора: сначала из настроек салона, затем из конфигурации
func (s *Service) credentials(ctx context.Context) (token, adminChat string) {
	token, adminChat = s.opts.BotToken, s.opts.AdminChatID

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		s.logger.Warn("Notify: failed to read salon settings, using config values: %v", err)
		return strings.TrimSpace(token), strings.TrimSpace(adminChat)
	}

	if v := strings.TrimSpace(settings.TelegramBotToken); v != "" {
		token = v
	}
	if v := strings.TrimSpace(settings.TelegramChatID); v != "" {
		adminChat = v
	}
	return strings.TrimSpace(token), strings.TrimSpace(adminChat)
}
