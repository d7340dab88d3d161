// Package engine provides the Step() orchestrator that resolves one
// player command per call: parse, dispatch to a verb handler, apply the
// resulting effects, and collect the narrative. Handlers validate
// before emitting effects, so a rejected command never leaves a partial
// state change.
package engine

import (
	"fmt"
	"strings"

	"github.com/ajmuir/castlequest/engine/effects"
	"github.com/ajmuir/castlequest/engine/parser"
	"github.com/ajmuir/castlequest/engine/rules"
	"github.com/ajmuir/castlequest/engine/state"
	"github.com/ajmuir/castlequest/engine/world"
	"github.com/ajmuir/castlequest/types"
)

// Engine holds the world graph and the mutable game state.
type Engine struct {
	Graph *world.Graph
	State *state.State
}

// New creates an engine with the canonical world and a fresh state.
func New() *Engine {
	return &Engine{
		Graph: world.New(),
		State: state.New(),
	}
}

// Step processes one player command and returns the result. Blank input
// produces an empty result and does not count as a turn.
func (e *Engine) Step(input string) types.Result {
	var result types.Result

	if e.State.GameOver() {
		result.Output = append(result.Output, "The game is over.")
		return result
	}

	intent := parser.Parse(input)
	if intent.Verb == types.VerbNone {
		return result
	}

	var effs []types.Effect
	var output []string

	switch intent.Verb {
	case types.VerbUnknown:
		output = []string{fmt.Sprintf("I don't understand '%s'", intent.Raw)}
	case types.VerbHelp:
		output = e.handleHelp()
	case types.VerbQuit:
		effs, output = e.handleQuit()
	case types.VerbInventory:
		output = e.handleInventory()
	case types.VerbLook:
		output = e.handleLook()
	case types.VerbGo:
		effs, output = e.handleGo(intent.Noun1)
	case types.VerbTake:
		effs, output = e.handleTake(intent.Noun1)
	case types.VerbDrop:
		effs, output = e.handleDrop(intent.Noun1)
	case types.VerbGive:
		effs, output = e.handleGive(intent.Noun1, intent.Noun2, "Give what to whom??")
	case types.VerbFeed:
		effs, output = e.handleGive(intent.Noun1, intent.Noun2, "Feed what to whom??")
	case types.VerbAttack:
		output = e.handleAttack(intent.Noun1)
	case types.VerbOpen:
		effs, output = e.handleOpen(intent.Noun1)
	case types.VerbSwim:
		effs, output = e.handleSwim()
	case types.VerbSay:
		effs, output = e.handleSay(intent.Noun1)
	case types.VerbUse:
		effs, output = e.handleUse(intent.Noun1)
	default:
		panic(fmt.Sprintf("engine: unhandled verb %d", intent.Verb))
	}

	result.Effects = effs
	result.Events = effects.Apply(e.State, e.Graph, effs)
	result.Output = append(result.Output, output...)

	e.State.TurnCount++

	return result
}

// DescribeRoom produces the room's static text plus a line per object
// present. Identical calls without intervening state change produce
// identical output.
func (e *Engine) DescribeRoom(room types.RoomID) []string {
	output := strings.Split(e.Graph.Description(room), "\n")
	for _, ob := range e.Graph.ObjectsIn(room) {
		output = append(output, fmt.Sprintf("There is a %s here.", ob))
	}
	return output
}

func (e *Engine) handleHelp() []string {
	return []string{
		"Use text commands to walk around and do things.",
		"Some examples:",
		"    go north",
		"    get the rope",
		"    drop the lantern",
		"    inventory",
		"    unlock door",
		"    kill the serpent",
		"    quit",
	}
}

func (e *Engine) handleQuit() ([]types.Effect, []string) {
	effs := []types.Effect{{Kind: types.EndGame, Reason: types.Quit}}
	return effs, []string{"Goodbye!"}
}

func (e *Engine) handleInventory() []string {
	output := []string{"You are carrying:"}
	if len(e.State.Inventory) == 0 {
		return append(output, "    nothing.")
	}
	for _, ob := range e.State.Inventory {
		output = append(output, fmt.Sprintf("    a %s.", ob))
	}
	return output
}

func (e *Engine) handleLook() []string {
	return append([]string{""}, e.DescribeRoom(e.State.Location)...)
}

func (e *Engine) handleGo(noun1 string) ([]types.Effect, []string) {
	if noun1 == "" {
		return nil, []string{"Go where??"}
	}

	dir, ok := parser.Direction(noun1)
	if !ok {
		return nil, []string{"I don't understand that direction."}
	}

	here := e.State.Location

	switch obst := e.Graph.ObstructionAt(here, dir); obst {
	case types.Clear:
		// fall through to the move below

	case types.Impassable:
		return nil, []string{"You cannot go that way."}

	case types.KeyLocked:
		return nil, []string{"The castle door is locked!"}

	case types.CreatureBlocked:
		return nil, []string{"A huge, scary crocodile blocks your path!"}

	case types.PasswordSealed:
		return nil, []string{
			"The guard stops you and says \"Hey, you cannot go in there",
			"unless you tell me the password!\".",
		}

	default:
		panic(fmt.Sprintf("engine: unhandled obstruction %d", obst))
	}

	dest := e.Graph.Destination(here, dir)
	if dest == types.RoomNone {
		panic(fmt.Sprintf("engine: clear exit %s/%s has no destination", here, dir))
	}

	effs := []types.Effect{{Kind: types.MovePlayer, Room: dest}}
	output := append([]string{""}, e.DescribeRoom(dest)...)
	return effs, output
}

func (e *Engine) handleTake(noun1 string) ([]types.Effect, []string) {
	if noun1 == "" {
		return nil, []string{"Get what??"}
	}

	// Living objects refuse regardless of presence.
	if line, ok := rules.TakeRefusal(noun1); ok {
		return nil, []string{line}
	}

	if !e.Graph.HasObject(e.State.Location, noun1) {
		return nil, []string{fmt.Sprintf("There is no %s here you can take.", noun1)}
	}

	effs := []types.Effect{{Kind: types.TakeObject, Object: noun1}}
	output := []string{fmt.Sprintf("You pick up the %s.", noun1)}

	// Winning condition: acquiring the treasure ends the game, checked
	// right after the successful transfer.
	if noun1 == rules.Treasure {
		effs = append(effs, types.Effect{Kind: types.EndGame, Reason: types.Won})
		output = append(output,
			"",
			"With your good health and new-found wealth, you live",
			"happily ever after (well... about 50 years or so).",
			"",
			"Congratulations, you solved the game!",
		)
	}

	return effs, output
}

func (e *Engine) handleDrop(noun1 string) ([]types.Effect, []string) {
	if noun1 == "" {
		return nil, []string{"Drop what??"}
	}

	if !state.HasItem(e.State, noun1) {
		return nil, []string{fmt.Sprintf("You are not carrying a %s.", noun1)}
	}

	effs := []types.Effect{{Kind: types.DropObject, Object: noun1}}
	return effs, []string{fmt.Sprintf("You drop the %s.", noun1)}
}

// handleGive serves both give and feed; they differ only in the
// clarifying question for missing nouns.
func (e *Engine) handleGive(noun1, noun2, prompt string) ([]types.Effect, []string) {
	if noun1 == "" || noun2 == "" {
		return nil, []string{prompt}
	}

	if !state.HasItem(e.State, noun1) {
		return nil, []string{fmt.Sprintf("You can't give a %s, as you don't have one!", noun1)}
	}

	if !e.Graph.HasObject(e.State.Location, noun2) {
		return nil, []string{fmt.Sprintf("There is no %s here.", noun2)}
	}

	rule, ok := rules.Give(noun1, noun2)
	if !ok {
		return nil, []string{"Don't be ridiculous!"}
	}

	var effs []types.Effect
	if rule.Consume {
		effs = append(effs, types.Effect{Kind: types.ConsumeObject, Object: noun1})
	}
	if rule.BanishRecipient {
		effs = append(effs, types.Effect{Kind: types.BanishObject, Object: noun2})
	}
	if rule.ClearsExit {
		effs = append(effs, types.Effect{Kind: types.ClearExit, Room: rule.Room, Dir: rule.Dir})
	}
	return effs, rule.Narrative
}

func (e *Engine) handleAttack(noun1 string) []string {
	if noun1 == "" {
		return []string{"Attack what??"}
	}
	return rules.AttackLines(noun1, state.HasItem(e.State, "sword"))
}

func (e *Engine) handleOpen(noun1 string) ([]types.Effect, []string) {
	if noun1 == "" {
		return nil, []string{"Open what??"}
	}

	if noun1 == rules.DoorTarget && e.State.Location == rules.DoorRoom {
		if !state.HasItem(e.State, rules.KeyItem) {
			return nil, []string{"You don't have a key!"}
		}

		effs := []types.Effect{
			{Kind: types.ConsumeObject, Object: rules.KeyItem},
			{Kind: types.ClearExit, Room: rules.DoorRoom, Dir: rules.DoorDir},
		}
		return effs, rules.OpenDoorNarrative
	}

	return nil, []string{"You cannot open that!"}
}

func (e *Engine) handleUse(noun1 string) ([]types.Effect, []string) {
	if noun1 == "" {
		return nil, []string{"Use what??"}
	}

	if !state.HasItem(e.State, noun1) {
		return nil, []string{fmt.Sprintf("You don't have any %s to use.", noun1)}
	}

	// Using the key means opening the door with it.
	if noun1 == rules.KeyItem {
		return e.handleOpen(rules.DoorTarget)
	}

	return nil, []string{fmt.Sprintf("You fiddle with your %s, but nothing happens.", noun1)}
}

func (e *Engine) handleSwim() ([]types.Effect, []string) {
	switch e.State.Location {
	case types.Lake:
		if state.GetFlag(e.State, state.FlagFoundKey) {
			return nil, []string{"You enjoy a nice swim in the lake."}
		}
		effs := []types.Effect{
			{Kind: types.AwardObject, Object: rules.KeyItem},
			{Kind: types.SetFlag, Flag: state.FlagFoundKey},
		}
		return effs, []string{
			"You dive into the lake, enjoy paddling around for a while.",
			"Diving a bit deeper, you discover a rusty old key!",
		}

	case types.Outside:
		return nil, []string{"But the moat is full of crocodiles!"}

	default:
		return nil, []string{"There is nowhere to swim here."}
	}
}

func (e *Engine) handleSay(noun1 string) ([]types.Effect, []string) {
	if noun1 == "" {
		return nil, []string{"Say what??"}
	}

	if noun1 == types.Password && e.State.Location == rules.PasswordRoom {
		effs := []types.Effect{
			{Kind: types.ClearExit, Room: rules.PasswordRoom, Dir: rules.PasswordDir},
		}
		return effs, rules.PasswordNarrative
	}

	return nil, []string{fmt.Sprintf("You say %q but nothing happens.", noun1)}
}
