package statemachine

import (
	"fmt"

	"studentInfoBot/internal/domain/models"
)

// Event представляет событие, которое может вызвать переход состояния
type Event string

const (
	EventStartCommand    Event = "start_command"
	EventHelpCommand     Event = "help_command"
	EventContactShared   Event = "contact_shared"
	EventManualEntry     Event = "manual_entry"
	EventMenuProfile     Event = "menu_profile"
	EventMenuGrades      Event = "menu_grades"
	EventMenuPayment     Event = "menu_payment"
	EventMenuSchedule    Event = "menu_schedule"
	EventMenuNews        Event = "menu_news"
	EventMenuHelp        Event = "menu_help"
	EventMenuChangePhone Event = "menu_change_phone"
	EventLogout          Event = "logout"
	EventTextMessage     Event = "text_message"

	// результаты поиска ученика
	EventLookupFound       Event = "lookup_found"
	EventLookupNotFound    Event = "lookup_not_found"
	EventLookupUnavailable Event = "lookup_unavailable"
)

// InboundEvents все события, которые порождают входящие сообщения
var InboundEvents = []Event{
	EventStartCommand,
	EventHelpCommand,
	EventContactShared,
	EventManualEntry,
	EventMenuProfile,
	EventMenuGrades,
	EventMenuPayment,
	EventMenuSchedule,
	EventMenuNews,
	EventMenuHelp,
	EventMenuChangePhone,
	EventLogout,
	EventTextMessage,
}

// States все состояния диалога
var States = []models.SessionState{
	models.StateAwaitingPhone,
	models.StateEnteringPhone,
	models.StateAuthenticated,
}

// Action описывает, что нужно сделать в ответ на событие
type Action string

const (
	ActionWelcome        Action = "welcome"
	ActionLookupContact  Action = "lookup_contact"
	ActionPromptManual   Action = "prompt_manual"
	ActionLookupManual   Action = "lookup_manual"
	ActionShowProfile    Action = "show_profile"
	ActionShowGrades     Action = "show_grades"
	ActionShowPayment    Action = "show_payment"
	ActionShowComingSoon Action = "show_coming_soon"
	ActionShowHelp       Action = "show_help"
	ActionLogout         Action = "logout"
	ActionRemindAuth     Action = "remind_auth"
	ActionNotUnderstood  Action = "not_understood"
)

// Key ключ таблицы переходов
type Key struct {
	State models.SessionState
	Event Event
}

// Rule действие и состояние, в которое переходит сессия до выполнения действия
type Rule struct {
	Action Action
	To     models.SessionState
}

// StateMachine хранит таблицу переходов (состояние, событие) -> правило.
// Таблица заполняется один раз в конструкторе и дальше только читается.
type StateMachine struct {
	rules map[Key]Rule
}

// NewStateMachine создает state machine с полной таблицей переходов
func NewStateMachine() *StateMachine {
	sm := &StateMachine{
		rules: make(map[Key]Rule, len(States)*len(InboundEvents)),
	}

	for _, state := range States {
		// Общие для всех состояний правила
		sm.rules[Key{state, EventStartCommand}] = Rule{ActionWelcome, models.StateAwaitingPhone}
		sm.rules[Key{state, EventContactShared}] = Rule{ActionLookupContact, state}
		sm.rules[Key{state, EventManualEntry}] = Rule{ActionPromptManual, models.StateEnteringPhone}
		sm.rules[Key{state, EventHelpCommand}] = Rule{ActionShowHelp, state}
		sm.rules[Key{state, EventMenuHelp}] = Rule{ActionShowHelp, state}
		sm.rules[Key{state, EventLogout}] = Rule{ActionLogout, models.StateAwaitingPhone}

		fallback := ActionRemindAuth
		if state == models.StateAuthenticated {
			fallback = ActionNotUnderstood
		}

		for _, event := range InboundEvents {
			if _, ok := sm.rules[Key{state, event}]; !ok {
				sm.rules[Key{state, event}] = Rule{fallback, state}
			}
		}
	}

	// Ввод номера вручную
	sm.rules[Key{models.StateEnteringPhone, EventTextMessage}] = Rule{ActionLookupManual, models.StateEnteringPhone}

	// Меню авторизованного пользователя
	authenticated := map[Event]Action{
		EventMenuProfile:  ActionShowProfile,
		EventMenuGrades:   ActionShowGrades,
		EventMenuPayment:  ActionShowPayment,
		EventMenuSchedule: ActionShowComingSoon,
		EventMenuNews:     ActionShowComingSoon,
	}
	for event, action := range authenticated {
		sm.rules[Key{models.StateAuthenticated, event}] = Rule{action, models.StateAuthenticated}
	}
	sm.rules[Key{models.StateAuthenticated, EventMenuChangePhone}] = Rule{ActionPromptManual, models.StateEnteringPhone}

	return sm
}

// Resolve возвращает правило для события в текущем состоянии
func (sm *StateMachine) Resolve(currentState models.SessionState, event Event) (Rule, error) {
	rule, ok := sm.rules[Key{currentState, event}]
	if !ok {
		return Rule{}, fmt.Errorf("unexpected event %s in state %s", event, currentState)
	}

	return rule, nil
}

// Next определяет состояние после результата поиска ученика.
// При неудаче пользователь остается в текущем состоянии, поэтому ручной ввод
// повторяется до успеха, /start или выхода.
func (sm *StateMachine) Next(currentState models.SessionState, outcome Event) (models.SessionState, error) {
	switch outcome {
	case EventLookupFound:
		return models.StateAuthenticated, nil
	case EventLookupNotFound, EventLookupUnavailable:
		return currentState, nil
	default:
		return currentState, fmt.Errorf("unexpected outcome %s in state %s", outcome, currentState)
	}
}
