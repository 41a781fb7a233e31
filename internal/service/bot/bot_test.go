package bot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"studentInfoBot/internal/domain/models"
	"studentInfoBot/internal/presenter"
	"studentInfoBot/internal/repository/session"
	studentservice "studentInfoBot/internal/service/student"
)

type fakeRows struct {
	rows []models.Student
	err  error
}

func (f *fakeRows) Rows(context.Context) ([]models.Student, error) {
	return f.rows, f.err
}

type countingObserver struct {
	events map[string]int
}

func (c *countingObserver) IncUpdate(event string) {
	c.events[event]++
}

const userID int64 = 1001

func newTestBot(rows *fakeRows) (*Bot, *session.MemoryStore) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := session.NewMemoryStore(nil)
	students := studentservice.New(log, rows, nil, time.Second)

	return New(log, store, students, presenter.Contacts{AdminUsername: "school_admin"}, nil), store
}

func studentRows() *fakeRows {
	return &fakeRows{rows: []models.Student{
		{
			models.FieldFirstName: "Ali",
			models.FieldLastName:  "Valiyev",
			models.FieldPhone:     "901234567",
			models.FieldGrades:    "5, 4, 5",
		},
		{
			models.FieldFirstName: "Olim",
			models.FieldLastName:  "Karimov",
			models.FieldPhone:     "+998 91 111 22 33",
		},
	}}
}

func start() models.Incoming {
	return models.Incoming{UserID: userID, ChatID: userID, FirstName: "Ali", Text: "/start", IsCommand: true, Command: "start"}
}

func text(t string) models.Incoming {
	return models.Incoming{UserID: userID, ChatID: userID, Text: t}
}

func contact(number string) models.Incoming {
	return models.Incoming{UserID: userID, ChatID: userID, HasContact: true, ContactPhone: number}
}

func TestHandle_StartContactProfileScenario(t *testing.T) {
	b, store := newTestBot(studentRows())
	ctx := context.Background()

	replies := b.Handle(ctx, start())
	if len(replies) != 1 || replies[0].Keyboard != models.KeyboardPhoneRequest {
		t.Fatalf("unexpected /start replies: %+v", replies)
	}
	if !strings.Contains(replies[0].Text, "Salom, Ali!") {
		t.Errorf("welcome must greet user by first name: %s", replies[0].Text)
	}
	if got := store.Get(userID).State; got != models.StateAwaitingPhone {
		t.Fatalf("expected %s after /start, got %s", models.StateAwaitingPhone, got)
	}

	replies = b.Handle(ctx, contact("998901234567"))
	if len(replies) != 2 {
		t.Fatalf("expected success and profile replies, got %+v", replies)
	}
	if replies[0].Keyboard != models.KeyboardMainMenu || !strings.Contains(replies[0].Text, "Xush kelibsiz, Ali Valiyev!") {
		t.Errorf("unexpected success reply: %+v", replies[0])
	}
	if replies[1].ParseMode != models.ParseModeHTML || !strings.Contains(replies[1].Text, "• Baholar: 5, 4, 5") {
		t.Errorf("unexpected profile reply: %+v", replies[1])
	}

	sess := store.Get(userID)
	if !sess.Authenticated() || sess.Student[models.FieldFirstName] != "Ali" {
		t.Fatalf("session not authenticated: %+v", sess)
	}
}

func TestHandle_StartResetsAuthenticatedSession(t *testing.T) {
	b, store := newTestBot(studentRows())
	ctx := context.Background()

	b.Handle(ctx, contact("+998901234567"))
	if !store.Get(userID).Authenticated() {
		t.Fatal("precondition: user must be authenticated")
	}

	b.Handle(ctx, start())

	sess := store.Get(userID)
	if sess.State != models.StateAwaitingPhone || sess.Student != nil {
		t.Fatalf("/start must reset the session, got %+v", sess)
	}
}

func TestHandle_MenuWhileUnauthenticated(t *testing.T) {
	b, _ := newTestBot(studentRows())

	for _, label := range []string{models.ButtonProfile, models.ButtonGrades, models.ButtonPayment} {
		replies := b.Handle(context.Background(), text(label))
		if len(replies) != 1 || replies[0].Text != remindAuthText {
			t.Errorf("%s while unauthenticated: got %+v", label, replies)
		}
	}
}

func TestHandle_MenuViewsUseCachedRecord(t *testing.T) {
	rows := studentRows()
	b, _ := newTestBot(rows)
	ctx := context.Background()

	b.Handle(ctx, contact("998901234567"))

	// изменения в таблице не видны до повторного входа
	rows.rows[0][models.FieldGrades] = "2, 2, 2"
	rows.err = errors.New("backend down")

	replies := b.Handle(ctx, text(models.ButtonGrades))
	if len(replies) != 1 || !strings.Contains(replies[0].Text, "5, 4, 5") {
		t.Fatalf("grades must come from the cached record: %+v", replies)
	}

	replies = b.Handle(ctx, text(models.ButtonPayment))
	if len(replies) != 1 || !strings.Contains(replies[0].Text, "Admin: @school_admin") {
		t.Fatalf("unexpected payment view: %+v", replies)
	}

	replies = b.Handle(ctx, text(models.ButtonProfile))
	if len(replies) != 1 || !strings.Contains(replies[0].Text, "Ali Valiyev") {
		t.Fatalf("unexpected profile view: %+v", replies)
	}
}

func TestHandle_LogoutThenDifferentStudent(t *testing.T) {
	b, store := newTestBot(studentRows())
	ctx := context.Background()

	b.Handle(ctx, contact("998901234567"))

	replies := b.Handle(ctx, text(models.ButtonLogout))
	if len(replies) != 1 || replies[0].Text != logoutText || replies[0].Keyboard != models.KeyboardRemove {
		t.Fatalf("unexpected logout reply: %+v", replies)
	}
	if sess := store.Get(userID); sess.State != models.StateAwaitingPhone || sess.Student != nil {
		t.Fatalf("logout must clear the session, got %+v", sess)
	}

	b.Handle(ctx, contact("998911112233"))

	replies = b.Handle(ctx, text(models.ButtonProfile))
	if len(replies) != 1 || !strings.Contains(replies[0].Text, "Olim Karimov") {
		t.Fatalf("profile must show the new record: %+v", replies)
	}
	if strings.Contains(replies[0].Text, "Valiyev") {
		t.Fatalf("stale record shown after re-authentication: %s", replies[0].Text)
	}
}

func TestHandle_ManualEntry(t *testing.T) {
	b, store := newTestBot(studentRows())
	ctx := context.Background()

	b.Handle(ctx, start())

	replies := b.Handle(ctx, text(models.ButtonManualEntry))
	if len(replies) != 1 || replies[0].Text != manualEntryText || replies[0].Keyboard != models.KeyboardRemove {
		t.Fatalf("unexpected manual entry prompt: %+v", replies)
	}
	if got := store.Get(userID).State; got != models.StateEnteringPhone {
		t.Fatalf("expected %s, got %s", models.StateEnteringPhone, got)
	}

	replies = b.Handle(ctx, text("hello"))
	if len(replies) != 1 || replies[0].Text != invalidShapeText {
		t.Fatalf("expected shape re-prompt, got %+v", replies)
	}
	if got := store.Get(userID).State; got != models.StateEnteringPhone {
		t.Fatalf("invalid shape must not change state, got %s", got)
	}

	replies = b.Handle(ctx, text("93 555-44-33"))
	if len(replies) != 1 || !strings.Contains(replies[0].Text, "+998935554433 raqami tizimda topilmadi") {
		t.Fatalf("expected not found reply with canonical number, got %+v", replies)
	}
	if got := store.Get(userID).State; got != models.StateEnteringPhone {
		t.Fatalf("failed manual lookup must loop in %s, got %s", models.StateEnteringPhone, got)
	}

	replies = b.Handle(ctx, text("90 123 45 67"))
	if len(replies) != 2 || replies[0].Text != manualSuccessText {
		t.Fatalf("expected successful manual login, got %+v", replies)
	}
	if !store.Get(userID).Authenticated() {
		t.Fatal("session must be authenticated after manual login")
	}
}

func TestHandle_ContactNotFound(t *testing.T) {
	b, store := newTestBot(studentRows())

	replies := b.Handle(context.Background(), contact("998990000000"))
	if len(replies) != 1 {
		t.Fatalf("unexpected replies: %+v", replies)
	}
	if !strings.Contains(replies[0].Text, "+998990000000 raqami bizning tizimda ro'yxatdan o'tmagan") {
		t.Errorf("unexpected text: %s", replies[0].Text)
	}
	if !strings.Contains(replies[0].Text, "@school_admin") {
		t.Errorf("admin contact missing: %s", replies[0].Text)
	}
	if got := store.Get(userID).State; got != models.StateAwaitingPhone {
		t.Errorf("state must stay %s, got %s", models.StateAwaitingPhone, got)
	}
}

func TestHandle_BackendUnavailableDiffersFromNotFound(t *testing.T) {
	b, store := newTestBot(&fakeRows{err: errors.New("connection refused")})

	replies := b.Handle(context.Background(), contact("998901234567"))
	if len(replies) != 1 {
		t.Fatalf("unexpected replies: %+v", replies)
	}
	if replies[0].Text != backendUnavailableText("@school_admin") {
		t.Errorf("expected try-again-later text, got %s", replies[0].Text)
	}
	if replies[0].Keyboard != models.KeyboardPhoneRequest {
		t.Errorf("contact retry keyboard expected, got %s", replies[0].Keyboard)
	}
	if store.Get(userID).Authenticated() {
		t.Error("backend failure must not authenticate")
	}
}

func TestHandle_Fallbacks(t *testing.T) {
	b, _ := newTestBot(studentRows())
	ctx := context.Background()

	replies := b.Handle(ctx, text("salom"))
	if len(replies) != 1 || replies[0].Text != remindAuthText {
		t.Fatalf("unauthenticated free text: %+v", replies)
	}

	b.Handle(ctx, contact("998901234567"))

	replies = b.Handle(ctx, text("salom"))
	if len(replies) != 1 || replies[0].Text != notUnderstoodText || replies[0].Keyboard != models.KeyboardMainMenu {
		t.Fatalf("authenticated free text: %+v", replies)
	}
}

func TestHandle_SupplementaryMenu(t *testing.T) {
	b, store := newTestBot(studentRows())
	ctx := context.Background()

	replies := b.Handle(ctx, models.Incoming{UserID: userID, Text: "/help", IsCommand: true, Command: "help"})
	if len(replies) != 1 || !strings.Contains(replies[0].Text, "@school_admin") {
		t.Fatalf("help must be available before login: %+v", replies)
	}

	b.Handle(ctx, contact("998901234567"))

	replies = b.Handle(ctx, text(models.ButtonSchedule))
	if len(replies) != 1 || replies[0].Text != comingSoonText {
		t.Fatalf("schedule: %+v", replies)
	}

	replies = b.Handle(ctx, text(models.ButtonChangePhone))
	if len(replies) != 1 || replies[0].Text != manualEntryText {
		t.Fatalf("change phone: %+v", replies)
	}
	if sess := store.Get(userID); sess.State != models.StateEnteringPhone || sess.Student != nil {
		t.Fatalf("change phone must drop the cached record, got %+v", sess)
	}
}

func TestHandle_CountsEvents(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	obs := &countingObserver{events: map[string]int{}}
	store := session.NewMemoryStore(nil)
	b := New(log, store, studentservice.New(log, studentRows(), nil, time.Second), presenter.Contacts{}, obs)

	b.Handle(context.Background(), start())
	b.Handle(context.Background(), text("x"))

	if obs.events["start_command"] != 1 || obs.events["text_message"] != 1 {
		t.Fatalf("unexpected counted events: %v", obs.events)
	}
}
