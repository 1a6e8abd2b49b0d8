// Package parser converts command strings into Intent structs.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strings"

	"github.com/nathoo/buffetcore/types"
)

var verbAliases = map[string]string{
	// Hunt
	"h":     "hunt",
	"kill":  "hunt",
	"catch": "hunt",
	"stalk": "hunt",
	"prowl": "hunt",

	// Cook
	"c":     "cook",
	"fry":   "cook",
	"grill": "cook",
	"roast": "cook",
	"boil":  "cook",

	// Eat
	"e":       "eat",
	"consume": "eat",
	"devour":  "eat",
	"chomp":   "eat",
	"gulp":    "eat",
	"munch":   "eat",
	"swallow": "eat",

	// Craft
	"make":    "craft",
	"brew":    "craft",
	"mash":    "craft",
	"combine": "craft",

	// Shop
	"b":        "buy",
	"purchase": "buy",
	"unlock":   "buy",

	// Minions
	"recruit": "hire",
	"summon":  "hire",
	"train":   "upgrade",
	"promote": "upgrade",
	"boost":   "upgrade",

	// Reward
	"collect": "claim",
	"reward":  "claim",

	// Misc
	"z":    "wait",
	"idle": "wait",
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true, "some": true,
}

// Parse converts a raw command string into an Intent.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))

	// Handle multi-word verb phrases before general parsing.
	words = expandMultiWordVerbs(words)
	if len(words) == 0 {
		return types.Intent{}
	}

	// Apply verb aliases.
	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	verb := words[0]
	rest := stripArticles(words[1:])

	// "claim reward", "claim coins": the object carries no meaning.
	if verb == "claim" {
		rest = nil
	}

	return types.Intent{
		Verb:   verb,
		Object: strings.Join(rest, " "),
	}
}

// expandMultiWordVerbs handles "level up", "pick up", "cash in" etc.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "level":
		if words[1] == "up" {
			return append([]string{"upgrade"}, words[2:]...)
		}
	case "pick", "grab":
		if words[1] == "up" {
			return append([]string{"claim"}, words[2:]...)
		}
	case "cash":
		if words[1] == "in" {
			return append([]string{"claim"}, words[2:]...)
		}
	case "go":
		if words[1] == "hunting" || words[1] == "hunt" {
			return append([]string{"hunt"}, words[2:]...)
		}
	case "eat":
		// "eat a meal" is the plain eat action.
		if len(words) == 2 && (words[1] == "meal" || words[1] == "meals") {
			return []string{"eat"}
		}
		if len(words) == 3 && articles[words[1]] && words[2] == "meal" {
			return []string{"eat"}
		}
	}

	return words
}

// stripArticles removes articles ("the", "a", "an") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}
