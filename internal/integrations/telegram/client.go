package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// DefaultEndpoint адрес Bot API: первый параметр - токен, второй - метод
const DefaultEndpoint = tgbotapi.APIEndpoint

// Client отправляет уведомления через Telegram Bot API
// Токен приходит с каждым сообщением, потому что его можно поменять в настройках салона
type Client struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        Logger

	mu   sync.Mutex
	bots map[string]*tgbotapi.BotAPI
}

// NewClient создает новый экземпляр клиента Telegram
// ratePerSecond и burst ограничивают исходящий поток под лимиты Bot API
func NewClient(endpoint string, timeout time.Duration, ratePerSecond float64, burst int, log Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst),
		log:     log,
		bots:    make(map[string]*tgbotapi.BotAPI),
	}
}

// Send отправляет HTML сообщение в чат
// chatID - числовой id чата или имя канала (с @ или без)
// Пользователю бот может написать только по числовому id, имя подходит лишь для канала администратора
func (c *Client) Send(ctx context.Context, token, chatID, text string) error {
	token = strings.TrimSpace(token)
	chatID = strings.TrimSpace(chatID)
	if token == "" {
		return ErrNotConfigured
	}
	if chatID == "" {
		return ErrNoRecipient
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}

	bot, err := c.bot(token)
	if err != nil {
		return err
	}

	msg := newMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := bot.Send(msg); err != nil {
		if isUnauthorized(err) {
			c.forget(token)
			return fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return fmt.Errorf("%w: chat=%s: %v", ErrSendFailed, chatID, err)
	}

	c.log.Info("Telegram: message sent to chat=%s", chatID)
	return nil
}

// bot возвращает клиента Bot API для токена, создавая его при первом обращении
// Создание проверяет токен запросом getMe, запрос идёт без блокировки кэша
func (c *Client) bot(token string) (*tgbotapi.BotAPI, error) {
	c.mu.Lock()
	bot, ok := c.bots[token]
	c.mu.Unlock()
	if ok {
		return bot, nil
	}

	bot, err := tgbotapi.NewBotAPIWithClient(token, c.endpoint, c.httpClient)
	if err != nil {
		if isUnauthorized(err) {
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("%w: getMe: %v", ErrSendFailed, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.bots[token]; ok {
		return existing, nil
	}
	c.log.Info("Telegram: authorized as @%s", bot.Self.UserName)
	c.bots[token] = bot
	return bot, nil
}

func (c *Client) forget(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.bots, token)
}

func newMessage(chatID, text string) tgbotapi.MessageConfig {
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		return tgbotapi.NewMessage(id, text)
	}
	if !strings.HasPrefix(chatID, "@") {
		chatID = "@" + chatID
	}
	return tgbotapi.NewMessageToChannel(chatID, text)
}

func isUnauthorized(err error) bool {
	var apiErr *tgbotapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized
}
