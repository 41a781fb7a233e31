package session

import (
	"sync"
	"testing"

	"studentInfoBot/internal/domain/models"
)

func TestMemoryStore_DefaultState(t *testing.T) {
	store := NewMemoryStore(nil)

	sess := store.Get(42)
	if sess.State != models.StateAwaitingPhone {
		t.Fatalf("expected %s, got %s", models.StateAwaitingPhone, sess.State)
	}
	if sess.Student != nil {
		t.Fatal("new session must not carry a record")
	}
	if store.Len() != 0 {
		t.Fatal("Get must not create a session")
	}
}

func TestMemoryStore_AttachAndClear(t *testing.T) {
	var observed []int
	store := NewMemoryStore(func(active int) { observed = append(observed, active) })

	store.Set(1, models.StateEnteringPhone)
	store.AttachRecord(1, models.Student{models.FieldFirstName: "Ali"})

	sess := store.Get(1)
	if !sess.Authenticated() {
		t.Fatalf("expected authenticated session, got %+v", sess)
	}
	if sess.Student[models.FieldFirstName] != "Ali" {
		t.Fatalf("unexpected record: %v", sess.Student)
	}

	store.Clear(1)
	if got := store.Get(1); got.State != models.StateAwaitingPhone || got.Student != nil {
		t.Fatalf("session was not cleared: %+v", got)
	}

	want := []int{1, 1, 0}
	if len(observed) != len(want) {
		t.Fatalf("observer calls = %v, want %v", observed, want)
	}
	for i := range want {
		if observed[i] != want[i] {
			t.Fatalf("observer calls = %v, want %v", observed, want)
		}
	}
}

func TestMemoryStore_SetDropsRecordOutsideAuthenticated(t *testing.T) {
	store := NewMemoryStore(nil)
	store.AttachRecord(7, models.Student{models.FieldFirstName: "Ali"})

	store.Set(7, models.StateEnteringPhone)

	if sess := store.Get(7); sess.Student != nil {
		t.Fatalf("record must be dropped when leaving authenticated, got %v", sess.Student)
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore(nil)
	store.AttachRecord(3, models.Student{models.FieldFirstName: "Ali"})

	sess := store.Get(3)
	sess.Student[models.FieldFirstName] = "Vali"

	if got := store.Get(3).Student[models.FieldFirstName]; got != "Ali" {
		t.Fatalf("stored record was mutated through Get: %s", got)
	}
}

func TestMemoryStore_LockSerializesUser(t *testing.T) {
	store := NewMemoryStore(nil)
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := store.Lock(9)
			defer unlock()

			v := counter
			store.Set(9, models.StateEnteringPhone)
			counter = v + 1
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("lost updates under per-user lock: %d", counter)
	}
}
