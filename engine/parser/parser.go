// Package parser turns raw input lines into Intents. Two stages:
// Normalize cleans and splits the text, Parse maps the tokens to a
// canonical verb and up to two nouns. Intentionally dumb: no NLP,
// just table lookups.
package parser

import (
	"strings"

	"github.com/ajmuir/castlequest/types"
)

// Filler words dropped during normalization. They never change the
// meaning of a command.
var fillerWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"to": true, "with": true,
}

// Shorthand tokens expanded to their canonical word.
var abbreviations = map[string]string{
	"croc": "crocodile",
}

var directionWords = map[string]types.Direction{
	"n": types.North, "north": types.North,
	"s": types.South, "south": types.South,
	"e": types.East, "east": types.East,
	"w": types.West, "west": types.West,
	"u": types.Up, "up": types.Up,
	"d": types.Down, "down": types.Down,
}

var verbAliases = map[string]types.Verb{
	"help": types.VerbHelp,

	"exit": types.VerbQuit,
	"quit": types.VerbQuit,
	"q":    types.VerbQuit,

	"i":         types.VerbInventory,
	"inv":       types.VerbInventory,
	"invent":    types.VerbInventory,
	"inventory": types.VerbInventory,

	"look": types.VerbLook,
	"l":    types.VerbLook,

	"go":   types.VerbGo,
	"walk": types.VerbGo,

	"get":  types.VerbTake,
	"take": types.VerbTake,

	"drop": types.VerbDrop,

	"give":  types.VerbGive,
	"offer": types.VerbGive,

	"feed": types.VerbFeed,

	"kill":   types.VerbAttack,
	"attack": types.VerbAttack,
	"hit":    types.VerbAttack,
	"fight":  types.VerbAttack,

	"open":   types.VerbOpen,
	"unlock": types.VerbOpen,

	"swim": types.VerbSwim,
	"dive": types.VerbSwim,

	"say":   types.VerbSay,
	"speak": types.VerbSay,
	"tell":  types.VerbSay,

	"use":   types.VerbUse,
	"apply": types.VerbUse,
}

// Normalize splits a raw line on whitespace, lowercases each token,
// drops filler words, and expands abbreviations. Pure; never fails.
// Blank or all-filler input yields an empty slice.
func Normalize(input string) []string {
	var tokens []string
	for _, word := range strings.Fields(input) {
		word = strings.ToLower(word)
		if fillerWords[word] {
			continue
		}
		if full, ok := abbreviations[word]; ok {
			word = full
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// Direction maps a direction word or abbreviation to a Direction.
func Direction(word string) (types.Direction, bool) {
	d, ok := directionWords[word]
	return d, ok
}

// Parse converts a raw input line into an Intent. Blank input yields
// VerbNone; an unrecognized verb yields VerbUnknown with the offending
// token in Raw. Nouns beyond the second token are ignored.
func Parse(input string) types.Intent {
	tokens := Normalize(input)
	if len(tokens) == 0 {
		return types.Intent{Verb: types.VerbNone}
	}

	cmd := tokens[0]
	var noun1, noun2 string
	if len(tokens) > 1 {
		noun1 = tokens[1]
	}
	if len(tokens) > 2 {
		noun2 = tokens[2]
	}

	// The password typed bare counts as saying it. This shadows the
	// normal verb tables on purpose.
	if cmd == types.Password {
		return types.Intent{Verb: types.VerbSay, Raw: cmd, Noun1: types.Password}
	}

	// Bare direction words are shortcuts for "go <direction>".
	if _, ok := directionWords[cmd]; ok {
		return types.Intent{Verb: types.VerbGo, Raw: cmd, Noun1: cmd}
	}

	if verb, ok := verbAliases[cmd]; ok {
		return types.Intent{Verb: verb, Raw: cmd, Noun1: noun1, Noun2: noun2}
	}

	return types.Intent{Verb: types.VerbUnknown, Raw: cmd, Noun1: noun1, Noun2: noun2}
}
