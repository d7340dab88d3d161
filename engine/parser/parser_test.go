package parser

import (
	"reflect"
	"testing"

	"github.com/ajmuir/castlequest/types"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   \t  ",
			want:  nil,
		},
		{
			name:  "lowercases tokens",
			input: "GET Key",
			want:  []string{"get", "key"},
		},
		{
			name:  "drops articles",
			input: "get the key",
			want:  []string{"get", "key"},
		},
		{
			name:  "drops prepositions",
			input: "give carrot to parrot",
			want:  []string{"give", "carrot", "parrot"},
		},
		{
			name:  "drops a and an",
			input: "take a steak an apple",
			want:  []string{"take", "steak", "apple"},
		},
		{
			name:  "expands croc",
			input: "feed steak croc",
			want:  []string{"feed", "steak", "crocodile"},
		},
		{
			name:  "filler only",
			input: "the a an to with",
			want:  nil,
		},
		{
			name:  "collapses whitespace runs",
			input: "  go   north  ",
			want:  []string{"go", "north"},
		},
		{
			name:  "preserves token order",
			input: "give the steak to the crocodile",
			want:  []string{"give", "steak", "crocodile"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	input := "Give the CARROT to the croc"
	first := Normalize(input)
	for i := 0; i < 5; i++ {
		if got := Normalize(input); !reflect.DeepEqual(got, first) {
			t.Fatalf("Normalize(%q) changed between calls: %v vs %v", input, got, first)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Intent
	}{
		// Empty / whitespace
		{
			name:  "empty string",
			input: "",
			want:  types.Intent{Verb: types.VerbNone},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  types.Intent{Verb: types.VerbNone},
		},
		{
			name:  "filler words only",
			input: "the a to",
			want:  types.Intent{Verb: types.VerbNone},
		},

		// Basic verbs
		{
			name:  "look",
			input: "look",
			want:  types.Intent{Verb: types.VerbLook, Raw: "look"},
		},
		{
			name:  "l → look",
			input: "l",
			want:  types.Intent{Verb: types.VerbLook, Raw: "l"},
		},
		{
			name:  "i → inventory",
			input: "i",
			want:  types.Intent{Verb: types.VerbInventory, Raw: "i"},
		},
		{
			name:  "invent → inventory",
			input: "invent",
			want:  types.Intent{Verb: types.VerbInventory, Raw: "invent"},
		},
		{
			name:  "help",
			input: "help",
			want:  types.Intent{Verb: types.VerbHelp, Raw: "help"},
		},

		// Quit aliases
		{
			name:  "quit",
			input: "quit",
			want:  types.Intent{Verb: types.VerbQuit, Raw: "quit"},
		},
		{
			name:  "q → quit",
			input: "q",
			want:  types.Intent{Verb: types.VerbQuit, Raw: "q"},
		},
		{
			name:  "exit → quit",
			input: "exit",
			want:  types.Intent{Verb: types.VerbQuit, Raw: "exit"},
		},

		// Movement
		{
			name:  "go north",
			input: "go north",
			want:  types.Intent{Verb: types.VerbGo, Raw: "go", Noun1: "north"},
		},
		{
			name:  "walk south → go",
			input: "walk south",
			want:  types.Intent{Verb: types.VerbGo, Raw: "walk", Noun1: "south"},
		},
		{
			name:  "bare n → go n",
			input: "n",
			want:  types.Intent{Verb: types.VerbGo, Raw: "n", Noun1: "n"},
		},
		{
			name:  "bare north → go north",
			input: "north",
			want:  types.Intent{Verb: types.VerbGo, Raw: "north", Noun1: "north"},
		},
		{
			name:  "bare u → go u",
			input: "u",
			want:  types.Intent{Verb: types.VerbGo, Raw: "u", Noun1: "u"},
		},

		// Take / drop
		{
			name:  "get key → take",
			input: "get key",
			want:  types.Intent{Verb: types.VerbTake, Raw: "get", Noun1: "key"},
		},
		{
			name:  "take the key strips article",
			input: "take the key",
			want:  types.Intent{Verb: types.VerbTake, Raw: "take", Noun1: "key"},
		},
		{
			name:  "drop sword",
			input: "drop sword",
			want:  types.Intent{Verb: types.VerbDrop, Raw: "drop", Noun1: "sword"},
		},

		// Give / feed
		{
			name:  "give carrot to parrot",
			input: "give carrot to parrot",
			want:  types.Intent{Verb: types.VerbGive, Raw: "give", Noun1: "carrot", Noun2: "parrot"},
		},
		{
			name:  "offer steak to croc → give with expansion",
			input: "offer steak to croc",
			want:  types.Intent{Verb: types.VerbGive, Raw: "offer", Noun1: "steak", Noun2: "crocodile"},
		},
		{
			name:  "feed the croc with the steak",
			input: "feed steak to crocodile",
			want:  types.Intent{Verb: types.VerbFeed, Raw: "feed", Noun1: "steak", Noun2: "crocodile"},
		},

		// Combat
		{
			name:  "kill guard → attack",
			input: "kill guard",
			want:  types.Intent{Verb: types.VerbAttack, Raw: "kill", Noun1: "guard"},
		},
		{
			name:  "fight crocodile → attack",
			input: "fight crocodile",
			want:  types.Intent{Verb: types.VerbAttack, Raw: "fight", Noun1: "crocodile"},
		},

		// Open / use / swim / say
		{
			name:  "unlock door → open",
			input: "unlock door",
			want:  types.Intent{Verb: types.VerbOpen, Raw: "unlock", Noun1: "door"},
		},
		{
			name:  "apply key → use",
			input: "apply key",
			want:  types.Intent{Verb: types.VerbUse, Raw: "apply", Noun1: "key"},
		},
		{
			name:  "dive → swim",
			input: "dive",
			want:  types.Intent{Verb: types.VerbSwim, Raw: "dive"},
		},
		{
			name:  "say piehole",
			input: "say piehole",
			want:  types.Intent{Verb: types.VerbSay, Raw: "say", Noun1: "piehole"},
		},
		{
			name:  "speak piehole → say",
			input: "speak piehole",
			want:  types.Intent{Verb: types.VerbSay, Raw: "speak", Noun1: "piehole"},
		},

		// Password override: the bare password is "say <password>".
		{
			name:  "bare password → say password",
			input: "piehole",
			want:  types.Intent{Verb: types.VerbSay, Raw: "piehole", Noun1: "piehole"},
		},
		{
			name:  "bare password uppercase",
			input: "PIEHOLE",
			want:  types.Intent{Verb: types.VerbSay, Raw: "piehole", Noun1: "piehole"},
		},

		// Case insensitivity
		{
			name:  "GET KEY",
			input: "GET KEY",
			want:  types.Intent{Verb: types.VerbTake, Raw: "get", Noun1: "key"},
		},

		// Unknown verb keeps the offending token
		{
			name:  "unknown verb",
			input: "dance",
			want:  types.Intent{Verb: types.VerbUnknown, Raw: "dance"},
		},
		{
			name:  "unknown verb with nouns",
			input: "polish the sword",
			want:  types.Intent{Verb: types.VerbUnknown, Raw: "polish", Noun1: "sword"},
		},

		// Extra tokens beyond two nouns are ignored
		{
			name:  "extra tokens ignored",
			input: "give steak crocodile now please",
			want:  types.Intent{Verb: types.VerbGive, Raw: "give", Noun1: "steak", Noun2: "crocodile"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		word string
		want types.Direction
		ok   bool
	}{
		{"n", types.North, true},
		{"north", types.North, true},
		{"s", types.South, true},
		{"south", types.South, true},
		{"e", types.East, true},
		{"east", types.East, true},
		{"w", types.West, true},
		{"west", types.West, true},
		{"u", types.Up, true},
		{"up", types.Up, true},
		{"d", types.Down, true},
		{"down", types.Down, true},
		{"sideways", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := Direction(tt.word)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Direction(%q) = %v, %v, want %v, %v", tt.word, got, ok, tt.want, tt.ok)
		}
	}
}
