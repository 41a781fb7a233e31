package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"studentInfoBot/internal/domain/models"
	"studentInfoBot/internal/pkg/logger/sl"
	"studentInfoBot/internal/pkg/phone"
	"studentInfoBot/internal/presenter"
	studentservice "studentInfoBot/internal/service/student"
	"studentInfoBot/internal/statemachine"
)

// SessionStore хранилище сессий пользователей
type SessionStore interface {
	Lock(userID int64) func()
	Get(userID int64) models.Session
	Set(userID int64, state models.SessionState)
	AttachRecord(userID int64, student models.Student)
	Clear(userID int64)
}

// StudentFinder поиск ученика по номеру телефона
type StudentFinder interface {
	FindByPhone(ctx context.Context, phone string) (models.Student, error)
}

// UpdateObserver учитывает входящие события
type UpdateObserver interface {
	IncUpdate(event string)
}

type Bot struct {
	log      *slog.Logger
	sessions SessionStore
	students StudentFinder
	sm       *statemachine.StateMachine
	contacts presenter.Contacts
	observer UpdateObserver
}

func New(
	log *slog.Logger,
	sessions SessionStore,
	students StudentFinder,
	contacts presenter.Contacts,
	observer UpdateObserver,
) *Bot {
	return &Bot{
		log:      log,
		sessions: sessions,
		students: students,
		sm:       statemachine.NewStateMachine(),
		contacts: contacts,
		observer: observer,
	}
}

// Handle обрабатывает одно входящее сообщение и возвращает ответы.
// Сообщения одного пользователя обрабатываются строго по очереди.
func (b *Bot) Handle(ctx context.Context, in models.Incoming) []models.Reply {
	const op = "Bot.Handle"

	unlock := b.sessions.Lock(in.UserID)
	defer unlock()

	sess := b.sessions.Get(in.UserID)
	event := statemachine.Classify(in)

	log := b.log.With(
		slog.String("op", op),
		slog.String("trace_id", in.TraceID),
		slog.Int64("user_id", in.UserID),
		slog.String("state", string(sess.State)),
		slog.String("event", string(event)),
	)

	if b.observer != nil {
		b.observer.IncUpdate(string(event))
	}

	rule, err := b.sm.Resolve(sess.State, event)
	if err != nil {
		log.Error("no transition for event", sl.Err(err))

		return []models.Reply{plain(ErrorText, models.KeyboardNone)}
	}

	log.Debug("resolved action", slog.String("action", string(rule.Action)), slog.String("to", string(rule.To)))

	switch rule.Action {
	case statemachine.ActionWelcome:
		b.sessions.Set(in.UserID, rule.To)
		log.Info("session started", slog.String("username", in.Username))

		return []models.Reply{htmlReply(welcomeText(in.FirstName), models.KeyboardPhoneRequest)}

	case statemachine.ActionPromptManual:
		b.sessions.Set(in.UserID, rule.To)

		return []models.Reply{htmlReply(manualEntryText, models.KeyboardRemove)}

	case statemachine.ActionLookupContact:
		number := strings.TrimSpace(in.ContactPhone)
		if !strings.HasPrefix(number, "+") {
			number = "+" + number
		}
		log.Info("contact received", slog.String("phone", number))

		return b.authenticate(ctx, log, in.UserID, sess.State, number, true)

	case statemachine.ActionLookupManual:
		number := strings.TrimSpace(in.Text)
		if !phone.ValidShape(number) {
			log.Info("invalid phone shape")

			return []models.Reply{plain(invalidShapeText, models.KeyboardNone)}
		}

		return b.authenticate(ctx, log, in.UserID, sess.State, number, false)

	case statemachine.ActionShowProfile:
		return []models.Reply{b.view(sess, presenter.Profile)}

	case statemachine.ActionShowGrades:
		return []models.Reply{b.view(sess, presenter.Grades)}

	case statemachine.ActionShowPayment:
		return []models.Reply{b.view(sess, func(s models.Student) string {
			return presenter.Payment(s, b.contacts)
		})}

	case statemachine.ActionShowComingSoon:
		return []models.Reply{plain(comingSoonText, models.KeyboardNone)}

	case statemachine.ActionShowHelp:
		return []models.Reply{htmlReply(helpText(b.contacts.Admin()), models.KeyboardNone)}

	case statemachine.ActionLogout:
		b.sessions.Clear(in.UserID)
		log.Info("user logged out")

		return []models.Reply{plain(logoutText, models.KeyboardRemove)}

	case statemachine.ActionRemindAuth:
		return []models.Reply{plain(remindAuthText, models.KeyboardRemove)}

	case statemachine.ActionNotUnderstood:
		return []models.Reply{plain(notUnderstoodText, models.KeyboardMainMenu)}

	default:
		log.Error("unhandled action", slog.String("action", string(rule.Action)))

		return []models.Reply{plain(ErrorText, models.KeyboardNone)}
	}
}

// authenticate ищет ученика и переводит сессию в состояние по результату поиска
func (b *Bot) authenticate(
	ctx context.Context,
	log *slog.Logger,
	userID int64,
	current models.SessionState,
	number string,
	fromContact bool,
) []models.Reply {
	student, err := b.students.FindByPhone(ctx, number)

	outcome := statemachine.EventLookupFound
	switch {
	case err == nil:
	case errors.Is(err, studentservice.ErrStudentNotFound):
		outcome = statemachine.EventLookupNotFound
	default:
		outcome = statemachine.EventLookupUnavailable
	}

	next, smErr := b.sm.Next(current, outcome)
	if smErr != nil {
		log.Error("no transition for lookup outcome", sl.Err(smErr))

		return []models.Reply{plain(ErrorText, models.KeyboardNone)}
	}

	switch outcome {
	case statemachine.EventLookupFound:
		b.sessions.AttachRecord(userID, student)
		log.Info("user authenticated", slog.String("next", string(next)))

		success := manualSuccessText
		if fromContact {
			success = contactSuccessText(student.FullName())
		}

		return []models.Reply{
			plain(success, models.KeyboardMainMenu),
			htmlReply(presenter.Profile(student), models.KeyboardNone),
		}

	case statemachine.EventLookupNotFound:
		b.moveTo(userID, current, next)

		if fromContact {
			return []models.Reply{htmlReply(contactNotFoundText(number, b.contacts.Admin()), models.KeyboardRemove)}
		}

		return []models.Reply{htmlReply(manualNotFoundText(phone.Normalize(number), b.contacts.Admin()), models.KeyboardNone)}

	default:
		log.Error("student backend unavailable", sl.Err(err))
		b.moveTo(userID, current, next)

		keyboard := models.KeyboardNone
		if fromContact {
			keyboard = models.KeyboardPhoneRequest
		}

		return []models.Reply{htmlReply(backendUnavailableText(b.contacts.Admin()), keyboard)}
	}
}

func (b *Bot) moveTo(userID int64, current, next models.SessionState) {
	if next != current {
		b.sessions.Set(userID, next)
	}
}

// view показывает закэшированную запись; повторный поиск не выполняется
func (b *Bot) view(sess models.Session, render func(models.Student) string) models.Reply {
	if !sess.Authenticated() {
		return plain(recordMissingText, models.KeyboardNone)
	}

	return htmlReply(render(sess.Student), models.KeyboardNone)
}

func plain(text string, keyboard models.KeyboardKind) models.Reply {
	return models.Reply{Text: text, ParseMode: models.ParseModePlain, Keyboard: keyboard}
}

func htmlReply(text string, keyboard models.KeyboardKind) models.Reply {
	return models.Reply{Text: text, ParseMode: models.ParseModeHTML, Keyboard: keyboard}
}
