// Package types defines the shared data structures for the castlequest
// engine. Rooms, directions, obstructions, and verbs are closed
// enumerations; every consumer switches over them exhaustively.
package types

// RoomID identifies a location in the world graph.
type RoomID int

const (
	RoomNone RoomID = iota // absent destination, never a real room

	Mountain
	Forest
	Lake
	Outside // of the castle
	Castle  // inside it
	Treasury
)

// String returns a human-readable room name for status bars and logs.
func (r RoomID) String() string {
	switch r {
	case Mountain:
		return "Mountain"
	case Forest:
		return "Forest"
	case Lake:
		return "Lake"
	case Outside:
		return "Outside Castle"
	case Castle:
		return "Castle"
	case Treasury:
		return "Treasury"
	default:
		return "Nowhere"
	}
}

// Direction is a compass or vertical travel direction.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "?"
	}
}

// Directions lists all travel directions in display order.
var Directions = []Direction{North, South, East, West, Up, Down}

// Obstruction is the guard state of an exit. Impassable doubles as the
// "no such exit" value. Blocking kinds transition to Clear exactly once
// and never revert.
type Obstruction int

const (
	Impassable Obstruction = iota // no exit in that direction
	Clear                         // freely passable

	KeyLocked       // needs the key used on the door
	CreatureBlocked // a creature stands in the way
	PasswordSealed  // the guard demands the password
)

// Blocking reports whether the obstruction denies passage but belongs to
// a real exit (i.e. it can eventually be cleared).
func (o Obstruction) Blocking() bool {
	return o != Impassable && o != Clear
}

// Password is the phrase the treasury guard demands. Typing it bare is
// interpreted as saying it, so it is part of the command surface as
// well as the puzzle content.
const Password = "piehole"

// Verb is a canonical player command, after alias resolution.
type Verb int

const (
	VerbNone    Verb = iota // nothing parsed (blank input)
	VerbUnknown             // unrecognized; Intent.Raw holds the text

	VerbHelp
	VerbQuit
	VerbInventory
	VerbLook
	VerbGo
	VerbTake
	VerbDrop
	VerbGive
	VerbFeed
	VerbAttack
	VerbOpen
	VerbSwim
	VerbSay
	VerbUse
)

// Intent is the interpreted representation of a player command.
// Empty noun strings are the explicit "no noun given" value.
type Intent struct {
	Verb  Verb
	Raw   string // original verb token, for "I don't understand" feedback
	Noun1 string
	Noun2 string
}

// Reason records why a run ended.
type Reason int

const (
	StillPlaying Reason = iota
	Quit
	Won
)

// EffectKind enumerates the atomic state mutations.
type EffectKind int

const (
	// MovePlayer sets the player's location to Room.
	MovePlayer EffectKind = iota
	// TakeObject moves Object from the current room's set to inventory.
	TakeObject
	// DropObject moves Object from inventory to the current room's set.
	DropObject
	// ConsumeObject removes Object from inventory entirely.
	ConsumeObject
	// BanishObject removes Object from the current room's set entirely.
	BanishObject
	// AwardObject adds Object to inventory out of nowhere (discovery).
	AwardObject
	// ClearExit permanently unblocks the exit at (Room, Dir).
	ClearExit
	// SetFlag sets the named one-shot progress flag.
	SetFlag
	// EndGame sets the terminal flag with Reason.
	EndGame
)

// Effect is a single atomic state mutation instruction.
type Effect struct {
	Kind   EffectKind
	Room   RoomID
	Dir    Direction
	Object string
	Flag   string
	Reason Reason
}

// Event is emitted after an effect is applied, for trace output and
// front-end bookkeeping.
type Event struct {
	Type   string
	Object string
	Room   RoomID
	Dir    Direction
}

// Result is the output of a single game turn.
type Result struct {
	Effects []Effect
	Events  []Event
	Output  []string
}
