package models

// SessionState представляет возможные состояния диалога с пользователем
type SessionState string

const (
	StateAwaitingPhone SessionState = "awaiting_phone"
	StateEnteringPhone SessionState = "entering_phone"
	StateAuthenticated SessionState = "authenticated"
)

// Session хранит состояние пользователя и, после авторизации, его запись
type Session struct {
	State   SessionState
	Student Student
}

// Authenticated сообщает, есть ли у сессии закэшированная запись ученика
func (s Session) Authenticated() bool {
	return s.State == StateAuthenticated && s.Student != nil
}
