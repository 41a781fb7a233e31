package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"studentInfoBot/internal/domain/models"
	"studentInfoBot/internal/pkg/logger/sl"
	"studentInfoBot/internal/service/bot"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

// Conversation обрабатывает входящее сообщение и возвращает ответы
type Conversation interface {
	Handle(ctx context.Context, in models.Incoming) []models.Reply
}

// SendObserver учитывает неудачные отправки
type SendObserver interface {
	IncSendFailure()
}

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Handler struct {
	log      *slog.Logger
	bot      *tgbotapi.BotAPI
	sender   sender
	conv     Conversation
	km       *KeyboardManager
	observer SendObserver
}

func NewHandler(log *slog.Logger, botToken string, conv Conversation, observer SendObserver) (*Handler, error) {
	const op = "telegram.NewHandler"

	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create bot: %w", op, err)
	}

	return &Handler{
		log:      log,
		bot:      api,
		sender:   api,
		conv:     conv,
		km:       NewKeyboardManager(),
		observer: observer,
	}, nil
}

// Start запускает long polling и обрабатывает сообщения до отмены контекста
func (h *Handler) Start(ctx context.Context) error {
	const op = "Handler.Start"

	log := h.log.With(slog.String("op", op))
	log.Info("authorized on account", slog.String("username", h.bot.Self.UserName))

	// long polling не работает при установленном вебхуке
	if _, err := h.bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		log.Warn("failed to delete webhook", sl.Err(err))
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			log.Info("stopped receiving updates")

			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}

			go h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (h *Handler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	const op = "Handler.handleMessage"

	in, ok := toIncoming(message, uuid.NewString())
	if !ok {
		return
	}

	log := h.log.With(
		slog.String("op", op),
		slog.String("trace_id", in.TraceID),
		slog.Int64("user_id", in.UserID),
	)

	defer func() {
		if r := recover(); r != nil {
			log.Error("panic while handling message", slog.Any("panic", r))
			h.send(log, in.ChatID, models.Reply{Text: bot.ErrorText})
		}
	}()

	for _, reply := range h.conv.Handle(ctx, in) {
		h.send(log, in.ChatID, reply)
	}
}

// send отправляет ответ. Если Telegram отклонил HTML разметку, ответ
// повторяется один раз обычным текстом без тегов.
func (h *Handler) send(log *slog.Logger, chatID int64, reply models.Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	msg.ParseMode = string(reply.ParseMode)
	if markup, ok := h.km.Markup(reply.Keyboard); ok {
		msg.ReplyMarkup = markup
	}

	_, err := h.sender.Send(msg)
	if err == nil {
		return
	}

	log.Error("error sending message", slog.Int64("chat_id", chatID), sl.Err(err))
	h.sendFailed()

	if reply.ParseMode != models.ParseModeHTML || !isMarkupError(err) {
		return
	}

	msg.Text = plainText(reply.Text)
	msg.ParseMode = string(models.ParseModePlain)
	if _, err := h.sender.Send(msg); err != nil {
		log.Error("error sending plain fallback", slog.Int64("chat_id", chatID), sl.Err(err))
		h.sendFailed()
	}
}

func (h *Handler) sendFailed() {
	if h.observer != nil {
		h.observer.IncSendFailure()
	}
}

// toIncoming переводит сообщение Telegram в модель бота.
// Сообщения без отправителя (каналы) пропускаются.
func toIncoming(message *tgbotapi.Message, traceID string) (models.Incoming, bool) {
	if message == nil || message.From == nil || message.Chat == nil {
		return models.Incoming{}, false
	}

	in := models.Incoming{
		TraceID:   traceID,
		UserID:    message.From.ID,
		ChatID:    message.Chat.ID,
		Username:  message.From.UserName,
		FirstName: message.From.FirstName,
		Text:      message.Text,
	}

	if message.IsCommand() {
		in.IsCommand = true
		in.Command = message.Command()
	}

	if message.Contact != nil {
		in.HasContact = true
		in.ContactPhone = message.Contact.PhoneNumber
	}

	return in, true
}
