package models

// Incoming описывает входящее сообщение независимо от транспорта
type Incoming struct {
	TraceID      string
	UserID       int64
	ChatID       int64
	Username     string
	FirstName    string
	Text         string
	Command      string
	IsCommand    bool
	ContactPhone string
	HasContact   bool
}

// KeyboardKind определяет, какую клавиатуру показать вместе с ответом
type KeyboardKind string

const (
	KeyboardNone         KeyboardKind = ""
	KeyboardPhoneRequest KeyboardKind = "phone_request"
	KeyboardMainMenu     KeyboardKind = "main_menu"
	KeyboardRemove       KeyboardKind = "remove"
)

// ParseMode режим разметки текста ответа
type ParseMode string

const (
	ParseModePlain ParseMode = ""
	ParseModeHTML  ParseMode = "HTML"
)

// Reply исходящее сообщение
type Reply struct {
	Text      string
	ParseMode ParseMode
	Keyboard  KeyboardKind
}
