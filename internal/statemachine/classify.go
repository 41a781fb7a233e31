package statemachine

import (
	"strings"

	"studentInfoBot/internal/domain/models"
)

var buttonEvents = map[string]Event{
	models.ButtonManualEntry: EventManualEntry,
	models.ButtonProfile:     EventMenuProfile,
	models.ButtonGrades:      EventMenuGrades,
	models.ButtonPayment:     EventMenuPayment,
	models.ButtonSchedule:    EventMenuSchedule,
	models.ButtonNews:        EventMenuNews,
	models.ButtonHelp:        EventMenuHelp,
	models.ButtonChangePhone: EventMenuChangePhone,
	models.ButtonLogout:      EventLogout,
}

var commandEvents = map[string]Event{
	"start": EventStartCommand,
	"help":  EventHelpCommand,
}

// Classify определяет тип события входящего сообщения: сначала контакт,
// затем известные команды, затем надписи кнопок; все остальное - текст.
func Classify(in models.Incoming) Event {
	if in.HasContact {
		return EventContactShared
	}

	if in.IsCommand {
		if event, ok := commandEvents[strings.ToLower(in.Command)]; ok {
			return event
		}
	}

	if event, ok := buttonEvents[in.Text]; ok {
		return event
	}

	return EventTextMessage
}
