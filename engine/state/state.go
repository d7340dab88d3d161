// Package state manages the single mutable game state: the player's
// location, inventory, one-shot progress flags, and the terminal flag.
package state

import "github.com/ajmuir/castlequest/types"

// FlagFoundKey is set the first time the player finds the key at the
// lake, so the discovery only happens once.
const FlagFoundKey = "found_key"

// State is the complete mutable game state, created once at startup and
// threaded through every turn.
type State struct {
	Location  types.RoomID
	Inventory []string
	Flags     map[string]bool
	Terminal  types.Reason
	TurnCount int
}

// New creates the starting state: on the mountain, carrying a sword.
func New() *State {
	return &State{
		Location:  types.Mountain,
		Inventory: []string{"sword"},
		Flags:     map[string]bool{},
		Terminal:  types.StillPlaying,
	}
}

// GameOver reports whether the terminal flag is set.
func (s *State) GameOver() bool {
	return s.Terminal != types.StillPlaying
}

// HasItem reports whether the player carries the named object.
func HasItem(s *State, name string) bool {
	for _, ob := range s.Inventory {
		if ob == name {
			return true
		}
	}
	return false
}

// AddItem puts the named object into the inventory.
func AddItem(s *State, name string) {
	s.Inventory = append(s.Inventory, name)
}

// RemoveItem takes the named object out of the inventory, reporting
// whether it was carried.
func RemoveItem(s *State, name string) bool {
	for i, ob := range s.Inventory {
		if ob == name {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// GetFlag returns the value of a progress flag. Unset flags are false.
func GetFlag(s *State, name string) bool {
	return s.Flags[name]
}

// SetFlag sets a progress flag.
func SetFlag(s *State, name string) {
	s.Flags[name] = true
}
