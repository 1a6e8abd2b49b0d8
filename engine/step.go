package engine

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/nathoo/buffetcore/engine/parser"
	"github.com/nathoo/buffetcore/engine/resolve"
	"github.com/nathoo/buffetcore/engine/state"
	"github.com/nathoo/buffetcore/types"
)

const verbHint = "Try: hunt, cook, eat [item], craft <item>, buy <upgrade>, hire <minion>, upgrade <minion>, claim."

// Step processes one text command and dispatches it to the matching action.
func (e *Engine) Step(input string) types.Result {
	intent := parser.Parse(input)

	switch intent.Verb {
	case "":
		return hint("What do you want to do?")
	case "hunt":
		return e.Hunt()
	case "cook":
		return e.Cook()
	case "claim":
		return e.ClaimReward()
	case "wait":
		return hint("Bob waits. The minions do not.")

	case "eat":
		if intent.Object == "" {
			return e.Eat()
		}
		id, err := e.resolveName(intent.Object, resolve.Edible)
		if err != nil {
			return hint(err.Error())
		}
		if _, ok := e.defs.Craftable(id); ok {
			return e.EatSpecial(id)
		}
		return e.ConsumeOrgan(id)

	case "craft":
		if intent.Object == "" {
			return hint("Craft what?")
		}
		id, err := e.resolveName(intent.Object, func(_ *types.GameState, d *state.Defs) []resolve.Candidate {
			return resolve.Recipes(d)
		})
		if err != nil {
			return hint(err.Error())
		}
		return e.Craft(id)

	case "buy":
		return e.stepTarget(intent, "Buy what?", resolve.Shop, e.BuyUpgrade)
	case "hire":
		return e.stepTarget(intent, "Hire whom?", resolve.Hireable, e.HireMinion)
	case "upgrade":
		return e.stepTarget(intent, "Upgrade whom?", resolve.Owned, e.UpgradeMinion)

	default:
		return hint(fmt.Sprintf("Bob doesn't know how to %q. %s", intent.Verb, verbHint))
	}
}

type candidateFunc func(*types.GameState, *state.Defs) []resolve.Candidate

func (e *Engine) stepTarget(intent types.Intent, ask string, cands candidateFunc, action func(string) types.Result) types.Result {
	if intent.Object == "" {
		return hint(ask)
	}
	id, err := e.resolveName(intent.Object, cands)
	if err != nil {
		return hint(err.Error())
	}
	return action(id)
}

// resolveName matches a typed name against candidates taken from the
// current state. The action re-checks its preconditions afterwards.
func (e *Engine) resolveName(name string, cands candidateFunc) (string, error) {
	e.mu.Lock()
	list := cands(e.state, e.defs)
	e.mu.Unlock()
	return resolve.Resolve(name, list)
}

// hint is a reply that changes nothing and is not logged.
func hint(text string) types.Result {
	return types.Result{Output: []string{text}}
}

// Drop types accepted by Drop.
const (
	DropOrgan  = "ORGAN"
	DropPantry = "PANTRY"
	DropMeal   = "MEAL"
)

// Drop handles a drag-and-drop payload such as {"type":"ORGAN","id":"liver"}
// dropped onto Bob. Malformed or unknown payloads are ignored.
func (e *Engine) Drop(payload string) types.Result {
	if !gjson.Valid(payload) {
		e.logger.Printf("drop: ignoring malformed payload")
		return types.Result{}
	}
	p := gjson.Parse(payload)
	id := p.Get("id").String()

	switch p.Get("type").String() {
	case DropOrgan:
		return e.ConsumeOrgan(id)
	case DropPantry:
		return e.EatSpecial(id)
	case DropMeal:
		return e.Eat()
	default:
		e.logger.Printf("drop: ignoring payload type %q", p.Get("type").String())
		return types.Result{}
	}
}
