// Package session хранит состояние диалогов в памяти процесса.
package session

import (
	"sync"

	"studentInfoBot/internal/domain/models"
)

// Observer получает количество активных сессий после каждого изменения
type Observer func(active int)

// MemoryStore хранит одну структуру Session на пользователя.
// Данные живут до перезапуска процесса и не разделяются между экземплярами.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]models.Session

	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex

	observe Observer
}

// NewMemoryStore создает пустое хранилище сессий
func NewMemoryStore(observe Observer) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]models.Session),
		locks:    make(map[int64]*sync.Mutex),
		observe:  observe,
	}
}

// Lock захватывает мьютекс пользователя и возвращает функцию освобождения.
// Весь цикл "прочитать состояние -> записать новое" должен выполняться под ним.
func (s *MemoryStore) Lock(userID int64) func() {
	s.locksMu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	s.locksMu.Unlock()

	l.Lock()
	return l.Unlock
}

// Get возвращает сессию пользователя; новая сессия ожидает номер телефона
func (s *MemoryStore) Get(userID int64) models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return models.Session{State: models.StateAwaitingPhone}
	}
	sess.Student = sess.Student.Clone()
	return sess
}

// Set меняет состояние пользователя. Закэшированная запись сохраняется
// только в состоянии authenticated.
func (s *MemoryStore) Set(userID int64, state models.SessionState) {
	s.mu.Lock()
	sess := s.sessions[userID]
	sess.State = state
	if state != models.StateAuthenticated {
		sess.Student = nil
	}
	s.sessions[userID] = sess
	active := len(s.sessions)
	s.mu.Unlock()

	s.notify(active)
}

// AttachRecord сохраняет найденную запись и переводит сессию в authenticated
func (s *MemoryStore) AttachRecord(userID int64, student models.Student) {
	s.mu.Lock()
	s.sessions[userID] = models.Session{
		State:   models.StateAuthenticated,
		Student: student.Clone(),
	}
	active := len(s.sessions)
	s.mu.Unlock()

	s.notify(active)
}

// Clear удаляет сессию пользователя целиком
func (s *MemoryStore) Clear(userID int64) {
	s.mu.Lock()
	delete(s.sessions, userID)
	active := len(s.sessions)
	s.mu.Unlock()

	s.notify(active)
}

// Len возвращает количество сохраненных сессий
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

func (s *MemoryStore) notify(active int) {
	if s.observe != nil {
		s.observe(active)
	}
}
