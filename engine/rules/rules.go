// Package rules holds the fixed interaction tables that encode the
// puzzle: which give/feed pairs do something, which objects refuse to
// be taken, how attacks play out, and where the key and the password
// unlock their exits.
package rules

import (
	"fmt"

	"github.com/ajmuir/castlequest/types"
)

// Treasure is the one object whose acquisition wins the game.
const Treasure = "treasure"

// KeyItem unlocks the castle door.
const KeyItem = "key"

// DoorTarget is the only noun the open verb acts on.
const DoorTarget = "door"

// The castle door: opened at Outside, clearing the east exit.
const (
	DoorRoom = types.Outside
	DoorDir  = types.East
)

// The treasury passage: the password spoken at Castle clears the south exit.
const (
	PasswordRoom = types.Castle
	PasswordDir  = types.South
)

// GivePair keys the give/feed interaction table.
type GivePair struct {
	Item      string
	Recipient string
}

// GiveRule describes what happens when a listed pair is given.
type GiveRule struct {
	Narrative       []string
	Consume         bool // item leaves the inventory
	BanishRecipient bool // recipient leaves the room
	ClearsExit      bool
	Room            types.RoomID
	Dir             types.Direction
}

var giveTable = map[GivePair]GiveRule{
	{Item: "carrot", Recipient: "parrot"}: {
		Narrative: []string{
			"The parrot happily starts chewing on the carrot.  Every now",
			fmt.Sprintf("and then you hear it say %q as it munches away.", types.Password),
			"I wonder who this parrot belonged to??",
		},
		Consume: true,
	},
	{Item: "steak", Recipient: "crocodile"}: {
		Narrative: []string{
			"You hurl the steak towards the crocodile, which suddenly",
			"snaps into action, grabbing the steak in its steely jaws",
			"and slithering off to devour its meal in private.",
		},
		Consume:         true,
		BanishRecipient: true,
		ClearsExit:      true,
		Room:            types.Forest,
		Dir:             types.East,
	},
}

// Give looks up the outcome of giving item to recipient. Pairs not in
// the table do nothing.
func Give(item, recipient string) (GiveRule, bool) {
	rule, ok := giveTable[GivePair{Item: item, Recipient: recipient}]
	return rule, ok
}

// takeRefusals are living objects that refuse to be picked up.
var takeRefusals = map[string]string{
	"crocodile": "Are you serious?  The only thing you would get is eaten!",
	"parrot":    "The parrot nimbly evades your grasp.",
	"guard":     "A momentary blush suggests the guard was flattered.",
}

// TakeRefusal returns the flavor line for objects that cannot be taken,
// regardless of whether they are present.
func TakeRefusal(name string) (string, bool) {
	line, ok := takeRefusals[name]
	return line, ok
}

// AttackLines narrates an attack. Attacks never change state; the
// outcome text depends only on the target and whether the sword is
// carried.
func AttackLines(target string, hasSword bool) []string {
	switch target {
	case "crocodile":
		return []string{
			"The mere thought of wrestling with that savage beast",
			"paralyses you with fear!",
		}
	case "guard":
		if hasSword {
			return []string{
				"You and the guard begin a dangerous sword fight!",
				"But after ten minutes or so, you are both exhausted and",
				"decide to call it a draw.",
			}
		}
		return []string{
			"You raise your hands to fight, then notice that the guard",
			"is carrying a sword, so you shadow box for a while instead.",
		}
	}
	if hasSword {
		return []string{"You swing your sword, but miss!"}
	}
	return []string{"You bruise your hand in the attempt."}
}

// OpenDoorNarrative is printed when the key unlocks the castle door.
var OpenDoorNarrative = []string{
	"Carefully you insert the rusty old key in the lock, and turn it.",
	"Yes!!  The door unlocks!  However the key breaks into several",
	"pieces and is useless now.",
}

// PasswordNarrative is printed when the password is spoken at the castle.
var PasswordNarrative = []string{
	"The guard says \"Welcome Sire!\" and beckons you to enter",
	"the treasury.",
}
