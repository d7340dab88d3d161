package state

import (
	"testing"

	"github.com/ajmuir/castlequest/types"
)

func TestNewState(t *testing.T) {
	s := New()

	if s.Location != types.Mountain {
		t.Errorf("starting location = %v, want Mountain", s.Location)
	}
	if !HasItem(s, "sword") {
		t.Error("expected to start carrying the sword")
	}
	if len(s.Inventory) != 1 {
		t.Errorf("starting inventory = %v, want just the sword", s.Inventory)
	}
	if s.GameOver() {
		t.Error("fresh state reports game over")
	}
	if s.TurnCount != 0 {
		t.Errorf("starting turn count = %d, want 0", s.TurnCount)
	}
}

func TestInventoryOps(t *testing.T) {
	s := New()

	if HasItem(s, "key") {
		t.Error("should not start with the key")
	}

	AddItem(s, "key")
	if !HasItem(s, "key") {
		t.Error("expected key after AddItem")
	}

	if !RemoveItem(s, "key") {
		t.Error("RemoveItem(key) = false, want true")
	}
	if HasItem(s, "key") {
		t.Error("key still carried after RemoveItem")
	}
	if RemoveItem(s, "key") {
		t.Error("second RemoveItem(key) = true, want false")
	}
}

func TestFlags(t *testing.T) {
	s := New()

	if GetFlag(s, FlagFoundKey) {
		t.Error("unset flag reads true")
	}
	SetFlag(s, FlagFoundKey)
	if !GetFlag(s, FlagFoundKey) {
		t.Error("flag not set")
	}
}

func TestGameOver(t *testing.T) {
	s := New()

	s.Terminal = types.Quit
	if !s.GameOver() {
		t.Error("Terminal=Quit should report game over")
	}
	s.Terminal = types.Won
	if !s.GameOver() {
		t.Error("Terminal=Won should report game over")
	}
}
