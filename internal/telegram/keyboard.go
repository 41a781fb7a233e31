package telegram

import (
	"studentInfoBot/internal/domain/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// KeyboardManager хранит клавиатуры для каждого вида ответа
type KeyboardManager struct {
	keyboards map[models.KeyboardKind]tgbotapi.ReplyKeyboardMarkup
}

// NewKeyboardManager создает менеджер клавиатур
func NewKeyboardManager() *KeyboardManager {
	km := &KeyboardManager{
		keyboards: make(map[models.KeyboardKind]tgbotapi.ReplyKeyboardMarkup),
	}

	// Запрос номера: отправка контакта или ручной ввод
	phoneRequest := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact(models.ButtonShareContact),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(models.ButtonManualEntry),
		),
	)
	phoneRequest.ResizeKeyboard = true
	phoneRequest.OneTimeKeyboard = true
	km.keyboards[models.KeyboardPhoneRequest] = phoneRequest

	// Главное меню авторизованного пользователя
	rows := make([][]tgbotapi.KeyboardButton, 0, len(models.MainMenu))
	for _, labels := range models.MainMenu {
		row := make([]tgbotapi.KeyboardButton, 0, len(labels))
		for _, label := range labels {
			row = append(row, tgbotapi.NewKeyboardButton(label))
		}
		rows = append(rows, row)
	}
	mainMenu := tgbotapi.NewReplyKeyboard(rows...)
	mainMenu.ResizeKeyboard = true
	mainMenu.OneTimeKeyboard = false
	km.keyboards[models.KeyboardMainMenu] = mainMenu

	return km
}

// Markup возвращает разметку для вида клавиатуры; false - клавиатуру не трогать
func (km *KeyboardManager) Markup(kind models.KeyboardKind) (interface{}, bool) {
	if kind == models.KeyboardRemove {
		return km.RemoveKeyboard(), true
	}
	if keyboard, exists := km.keyboards[kind]; exists {
		return keyboard, true
	}
	return nil, false
}

// RemoveKeyboard создает команду для удаления клавиатуры
func (km *KeyboardManager) RemoveKeyboard() tgbotapi.ReplyKeyboardRemove {
	return tgbotapi.NewRemoveKeyboard(true)
}
