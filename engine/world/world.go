// Package world holds the room graph: locations, directional exits with
// their obstruction state, and the per-room object sets. The graph is
// built once at startup; afterwards only obstructions and object sets
// mutate, and obstructions only ever relax to Clear.
package world

import (
	"fmt"

	"github.com/ajmuir/castlequest/types"
)

// Exit is a directed edge to another room, guarded by an obstruction.
type Exit struct {
	Dir         types.Direction
	Dest        types.RoomID
	Obstruction types.Obstruction
}

// Room is a node in the world graph.
type Room struct {
	Description string
	Exits       []Exit   // at most one per direction
	Objects     []string // objects currently lying here
}

// Graph is the set of rooms and their connections.
type Graph struct {
	rooms map[types.RoomID]*Room
}

// ObstructionAt returns the obstruction guarding travel from room in the
// given direction, or Impassable if no exit exists there.
func (g *Graph) ObstructionAt(room types.RoomID, dir types.Direction) types.Obstruction {
	for _, e := range g.room(room).Exits {
		if e.Dir == dir {
			return e.Obstruction
		}
	}
	return types.Impassable
}

// Destination returns where the exit leads, or RoomNone if no exit
// exists. An exit whose obstruction reads Clear always has a
// destination; callers may treat RoomNone-after-Clear as a bug.
func (g *Graph) Destination(room types.RoomID, dir types.Direction) types.RoomID {
	for _, e := range g.room(room).Exits {
		if e.Dir == dir {
			return e.Dest
		}
	}
	return types.RoomNone
}

// ClearExit permanently relaxes the exit's obstruction to Clear.
// No-op if the exit does not exist or is already clear.
func (g *Graph) ClearExit(room types.RoomID, dir types.Direction) {
	r := g.room(room)
	for i := range r.Exits {
		if r.Exits[i].Dir == dir {
			r.Exits[i].Obstruction = types.Clear
		}
	}
}

// ExitDirections returns the directions with an exit (any obstruction),
// in display order.
func (g *Graph) ExitDirections(room types.RoomID) []types.Direction {
	var dirs []types.Direction
	for _, d := range types.Directions {
		if g.ObstructionAt(room, d) != types.Impassable {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// ObjectsIn returns a copy of the room's object list.
func (g *Graph) ObjectsIn(room types.RoomID) []string {
	r := g.room(room)
	out := make([]string, len(r.Objects))
	copy(out, r.Objects)
	return out
}

// HasObject reports whether the named object lies in the room.
func (g *Graph) HasObject(room types.RoomID, name string) bool {
	for _, ob := range g.room(room).Objects {
		if ob == name {
			return true
		}
	}
	return false
}

// AddObject places the named object in the room.
func (g *Graph) AddObject(room types.RoomID, name string) {
	r := g.room(room)
	r.Objects = append(r.Objects, name)
}

// RemoveObject takes the named object out of the room, reporting whether
// it was present.
func (g *Graph) RemoveObject(room types.RoomID, name string) bool {
	r := g.room(room)
	for i, ob := range r.Objects {
		if ob == name {
			r.Objects = append(r.Objects[:i], r.Objects[i+1:]...)
			return true
		}
	}
	return false
}

// Description returns the room's static narrative text.
func (g *Graph) Description(room types.RoomID) string {
	return g.room(room).Description
}

func (g *Graph) room(id types.RoomID) *Room {
	r, ok := g.rooms[id]
	if !ok {
		panic(fmt.Sprintf("world: no such room %d", id))
	}
	return r
}

// New builds the canonical world: six rooms around a castle, three
// locked paths, and the objects that unlock them.
func New() *Graph {
	return &Graph{rooms: map[types.RoomID]*Room{
		types.Mountain: {
			Description: "You are standing on a large grassy mountain.\n" +
				"To the north you see a thick forest.\n" +
				"Other directions are blocked by steep cliffs.",
			Exits: []Exit{
				{Dir: types.North, Dest: types.Forest, Obstruction: types.Clear},
			},
		},
		types.Forest: {
			Description: "You are in a forest, surrounded by dense trees and shrubs.\n" +
				"A wide path slopes gently upwards to the south, and\n" +
				"narrow paths lead east and west.",
			Exits: []Exit{
				{Dir: types.South, Dest: types.Mountain, Obstruction: types.Clear},
				{Dir: types.West, Dest: types.Lake, Obstruction: types.Clear},
				{Dir: types.East, Dest: types.Outside, Obstruction: types.CreatureBlocked},
			},
			Objects: []string{"crocodile", "parrot"},
		},
		types.Lake: {
			Description: "You stand on the shore of a beautiful lake, soft sand under\n" +
				"your feet.  The clear water looks warm and inviting.",
			Exits: []Exit{
				{Dir: types.East, Dest: types.Forest, Obstruction: types.Clear},
			},
			Objects: []string{"steak"},
		},
		types.Outside: {
			Description: "The forest is thinning off here.  To the east you can see a\n" +
				"large castle made of dark brown stone.  A narrow path leads\n" +
				"back into the forest to the west.",
			Exits: []Exit{
				{Dir: types.West, Dest: types.Forest, Obstruction: types.Clear},
				{Dir: types.East, Dest: types.Castle, Obstruction: types.KeyLocked},
			},
		},
		types.Castle: {
			Description: "You are standing inside a magnificant, opulent castle.\n" +
				"A staircase leads to the upper levels, but unfortunately\n" +
				"it is currently blocked off by rusty delivery crates.\n" +
				"A large wooden door leads outside to the west, and a small\n" +
				"door leads south.",
			Exits: []Exit{
				{Dir: types.West, Dest: types.Outside, Obstruction: types.Clear},
				{Dir: types.South, Dest: types.Treasury, Obstruction: types.PasswordSealed},
			},
			Objects: []string{"guard", "carrot"},
		},
		types.Treasury: {
			Description: "Wow!  This room is full of valuable treasures.  Gold, jewels,\n" +
				"valuable antiques sit on sturdy shelves against the walls.\n" +
				"However...... perhaps money isn't everything??",
			Exits: []Exit{
				{Dir: types.North, Dest: types.Castle, Obstruction: types.Clear},
			},
			Objects: []string{"treasure"},
		},
	}}
}
