package bot

import "testing"

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	if _, ok := store.Get(42); ok {
		t.Fatal("expected no session initially")
	}

	store.Set(42, Session{Action: ActionCreatingTicket, Category: "Order Issues", Step: "message"})
	session, ok := store.Get(42)
	if !ok {
		t.Fatal("expected session after Set")
	}
	if session.Action != ActionCreatingTicket || session.Category != "Order Issues" {
		t.Fatalf("session = %+v", session)
	}

	store.Clear(42)
	if _, ok := store.Get(42); ok {
		t.Fatal("expected no session after Clear")
	}
}

func TestSessionStoreReturnsCopies(t *testing.T) {
	store := NewSessionStore()
	store.Set(42, Session{Action: ActionWritingReview, Rating: 4})

	session, _ := store.Get(42)
	session.Rating = 1

	again, _ := store.Get(42)
	if again.Rating != 4 {
		t.Fatalf("stored session mutated through copy: rating = %d", again.Rating)
	}
}

func TestSessionStoreIsolatesUsers(t *testing.T) {
	store := NewSessionStore()
	store.Set(1, Session{Action: ActionCreatingTicket})
	store.Set(2, Session{Action: ActionWritingReview})

	store.Clear(1)
	if _, ok := store.Get(2); !ok {
		t.Fatal("clearing one user dropped another user's session")
	}
}
