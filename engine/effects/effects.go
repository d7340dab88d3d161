// Package effects applies atomic state mutations. Handlers validate
// first and only then emit effects, so Apply assumes its preconditions
// hold: an effect that cannot be applied is an internal consistency bug
// and panics rather than being narrated away.
package effects

import (
	"fmt"

	"github.com/ajmuir/castlequest/engine/state"
	"github.com/ajmuir/castlequest/engine/world"
	"github.com/ajmuir/castlequest/types"
)

// Apply performs the effects in order, mutating the state and graph,
// and returns the events emitted.
func Apply(s *state.State, g *world.Graph, effs []types.Effect) []types.Event {
	var events []types.Event

	for _, eff := range effs {
		switch eff.Kind {
		case types.MovePlayer:
			s.Location = eff.Room
			events = append(events, types.Event{Type: "room_entered", Room: eff.Room})

		case types.TakeObject:
			if !g.RemoveObject(s.Location, eff.Object) {
				panic(fmt.Sprintf("effects: object %q reported present but absent in %s", eff.Object, s.Location))
			}
			state.AddItem(s, eff.Object)
			events = append(events, types.Event{Type: "object_taken", Object: eff.Object, Room: s.Location})

		case types.DropObject:
			if !state.RemoveItem(s, eff.Object) {
				panic(fmt.Sprintf("effects: object %q reported carried but absent from inventory", eff.Object))
			}
			g.AddObject(s.Location, eff.Object)
			events = append(events, types.Event{Type: "object_dropped", Object: eff.Object, Room: s.Location})

		case types.ConsumeObject:
			if !state.RemoveItem(s, eff.Object) {
				panic(fmt.Sprintf("effects: object %q reported carried but absent from inventory", eff.Object))
			}
			events = append(events, types.Event{Type: "object_consumed", Object: eff.Object})

		case types.BanishObject:
			if !g.RemoveObject(s.Location, eff.Object) {
				panic(fmt.Sprintf("effects: object %q reported present but absent in %s", eff.Object, s.Location))
			}
			events = append(events, types.Event{Type: "object_banished", Object: eff.Object, Room: s.Location})

		case types.AwardObject:
			state.AddItem(s, eff.Object)
			events = append(events, types.Event{Type: "object_found", Object: eff.Object})

		case types.ClearExit:
			g.ClearExit(eff.Room, eff.Dir)
			events = append(events, types.Event{Type: "exit_cleared", Room: eff.Room, Dir: eff.Dir})

		case types.SetFlag:
			state.SetFlag(s, eff.Flag)
			events = append(events, types.Event{Type: "flag_set", Object: eff.Flag})

		case types.EndGame:
			s.Terminal = eff.Reason
			events = append(events, types.Event{Type: "game_ended"})

		default:
			panic(fmt.Sprintf("effects: unknown effect kind %d", eff.Kind))
		}
	}

	return events
}
