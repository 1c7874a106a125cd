package models

import (
	"reflect"
	"testing"
)

func TestNewSessionDefaults(t *testing.T) {
	sess := NewSession("C1")

	if sess.ChannelID != "C1" {
		t.Errorf("channel = %q, want C1", sess.ChannelID)
	}
	if sess.Active() {
		t.Error("new session should not be active")
	}
	if sess.CurrentRound != 1 {
		t.Errorf("round = %d, want 1", sess.CurrentRound)
	}
	if sess.ID == NewSession("C1").ID {
		t.Error("session IDs should be unique")
	}
}

func TestLikedListIsSorted(t *testing.T) {
	sess := NewSession("C1")
	sess.Like("zebra stripes")
	sess.Like("apple carts")
	sess.Like("mango stands")

	want := []string{"apple carts", "mango stands", "zebra stripes"}
	if got := sess.LikedList(); !reflect.DeepEqual(got, want) {
		t.Errorf("LikedList = %v, want %v", got, want)
	}
}

func TestUnlikeOnlyTouchesLiked(t *testing.T) {
	sess := NewSession("C1")
	sess.Like("X")
	sess.Remove("X")
	sess.Unlike("X")

	if sess.LikedIdeas["X"] {
		t.Error("X should be gone from liked set")
	}
	if !sess.RemovedIdeas["X"] {
		t.Error("X should survive in removed set")
	}
}
