// Package parser converts command strings into Intent structs.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strings"

	"github.com/nathoo/superadventure/types"
)

var directionExpansions = map[string]string{
	"n": "north",
	"e": "east",
	"s": "south",
	"w": "west",
}

// Full direction names that are standalone shortcuts for "go <dir>".
var directionNames = map[string]bool{
	"north": true, "east": true, "south": true, "west": true,
}

var verbAliases = map[string]string{
	// Look
	"l":        "look",
	"examine":  "look",
	"x":        "look",
	"describe": "look",

	// Movement
	"walk":   "go",
	"run":    "go",
	"move":   "go",
	"head":   "go",
	"travel": "go",

	// Attack
	"hit":    "attack",
	"fight":  "attack",
	"strike": "attack",
	"kill":   "attack",
	"swing":  "attack",

	// Drink
	"quaff":   "drink",
	"sip":     "drink",
	"swallow": "drink",
	"heal":    "drink",

	// Equip
	"wield": "equip",
	"ready": "equip",
	"hold":  "equip",

	// Queries
	"inv":     "inventory",
	"i":       "inventory",
	"q":       "quests",
	"quest":   "quests",
	"journal": "quests",
	"log":     "quests",
}

var prepositions = map[string]bool{
	"on": true, "at": true, "with": true,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true, "my": true,
}

// Parse converts a raw command string into an Intent.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))

	// Direction shortcut: bare "n", "south", etc. → go <direction>
	if len(words) == 1 {
		if dir, ok := directionExpansions[words[0]]; ok {
			return types.Intent{Verb: "go", Object: dir}
		}
		if directionNames[words[0]] {
			return types.Intent{Verb: "go", Object: words[0]}
		}
	}

	// Apply verb aliases.
	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	verb := words[0]
	rest := stripArticles(words[1:])

	// "attack rat with club" → the weapon is what matters.
	// "attack with club" → same.
	object := objectAfterPreposition(rest)

	// "use" picks drink or attack from what is being used.
	if verb == "use" {
		verb = "attack"
		if strings.Contains(object, "potion") {
			verb = "drink"
		}
	}

	if verb == "go" {
		if dir, ok := directionExpansions[object]; ok {
			object = dir
		}
	}

	return types.Intent{Verb: verb, Object: object}
}

// stripArticles removes articles ("the", "a", "an", "my") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}

// objectAfterPreposition returns the words after the first preposition, or
// all words if there is none.
func objectAfterPreposition(words []string) string {
	for i, w := range words {
		if prepositions[w] {
			return strings.Join(words[i+1:], " ")
		}
	}
	return strings.Join(words, " ")
}
