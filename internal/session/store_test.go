package session

import "testing"

func TestGetLazilyInitializes(t *testing.T) {
	store := NewStore()

	sess := store.Get("C123")
	if sess == nil {
		t.Fatal("expected a session")
	}
	if sess.Topic != "" {
		t.Errorf("expected empty topic, got %q", sess.Topic)
	}
	if len(sess.Ideas) != 0 {
		t.Errorf("expected no ideas, got %v", sess.Ideas)
	}
	if len(sess.LikedIdeas) != 0 || len(sess.RemovedIdeas) != 0 {
		t.Error("expected empty liked/removed sets")
	}
	if sess.CurrentRound != 1 {
		t.Errorf("expected round 1, got %d", sess.CurrentRound)
	}
	if sess.ID == "" {
		t.Error("expected a session ID")
	}
}

func TestGetReturnsSameSession(t *testing.T) {
	store := NewStore()

	a := store.Get("C123")
	a.Topic = "robots"
	b := store.Get("C123")

	if a != b {
		t.Error("expected the same session instance on repeated access")
	}
	if b.Topic != "robots" {
		t.Errorf("expected mutation to survive, got topic %q", b.Topic)
	}
}

func TestChannelsAreIsolated(t *testing.T) {
	store := NewStore()

	store.Get("C1").Topic = "one"
	if topic := store.Get("C2").Topic; topic != "" {
		t.Errorf("expected fresh session for second channel, got topic %q", topic)
	}
}

func TestResetReinitializes(t *testing.T) {
	store := NewStore()

	sess := store.Get("C123")
	sess.Topic = "robots"
	sess.Ideas = []string{"a", "b"}
	sess.Like("a")
	sess.Remove("b")
	sess.CurrentRound = 4

	fresh := store.Reset("C123")

	if fresh.Topic != "" || len(fresh.Ideas) != 0 || fresh.CurrentRound != 1 {
		t.Errorf("reset did not reinitialize: %+v", fresh)
	}
	if len(fresh.LikedIdeas) != 0 || len(fresh.RemovedIdeas) != 0 {
		t.Error("reset did not clear liked/removed sets")
	}
	if store.Get("C123") != fresh {
		t.Error("store should hand out the fresh session after reset")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	store := NewStore()

	store.Get("C123").Topic = "robots"
	store.Reset("C123")
	sess := store.Reset("C123")

	if sess.Topic != "" || len(sess.Ideas) != 0 || sess.CurrentRound != 1 {
		t.Errorf("double reset should yield default state: %+v", sess)
	}
	if len(sess.LikedIdeas) != 0 || len(sess.RemovedIdeas) != 0 {
		t.Error("double reset should yield empty sets")
	}
}
