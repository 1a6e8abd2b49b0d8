// Package flavor picks descriptive log lines for player actions.
package flavor

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/nathoo/buffetcore/types"
)

// Describer turns an action kind and optional context into a line of text.
// It is safe for concurrent use.
type Describer struct {
	mu        sync.Mutex
	rng       *rand.Rand
	templates map[types.ActionKind][]string
	fallback  []string
}

// New creates a Describer over the built-in templates.
func New(seed int64) *Describer {
	return &Describer{
		rng:       rand.New(rand.NewSource(seed)),
		templates: defaultTemplates,
		fallback:  defaultFallback,
	}
}

// Describe returns a non-empty line for kind. Unknown kinds use the generic
// fallback table.
func (d *Describer) Describe(kind types.ActionKind, context string) string {
	d.mu.Lock()
	pool := d.templates[kind]
	if len(pool) == 0 {
		pool = d.fallback
	}
	template := pool[d.rng.Intn(len(pool))]
	d.mu.Unlock()

	if context == "" {
		return template
	}
	switch kind {
	case types.ActionUnlock:
		return fmt.Sprintf("Bob bought %s. %s", context, template)
	case types.ActionCraft:
		return fmt.Sprintf("Bob crafted %s. %s", context, template)
	case types.ActionEatSpecial, types.ActionConsumeOrgan:
		return fmt.Sprintf("Bob ate %s. %s", context, template)
	case types.ActionLevelUp:
		return fmt.Sprintf("%s %s", context, template)
	case types.ActionUpgradeMinion:
		return fmt.Sprintf("%s upgraded! %s", context, template)
	default:
		return fmt.Sprintf("%s (%s)", template, context)
	}
}

var defaultFallback = []string{
	"Bob did a thing.",
	"Something happened.",
	"Bob stares blankly.",
	"Activity complete.",
}

var defaultTemplates = map[types.ActionKind][]string{
	types.ActionHunt: {
		"Bob snagged one with his weird grabbers!",
		"Gotcha! Another one for the pantry.",
		"A swift capture. Bob is pleased.",
		"Bob's hunting skills are unmatched... mostly.",
		"Into the sack you go!",
		"Bob lurked, Bob pounced, Bob won.",
	},
	types.ActionFailHunt: {
		"Ouch! That one bit back!",
		"Bob tripped over his own feet.",
		"The prey escaped. Bob is sad.",
		"A humiliating defeat.",
		"Bob got slapped. It hurts.",
		"Mission failed. Bob returns empty handed.",
	},
	types.ActionCook: {
		"Something bubbles ominously in the pot...",
		"Smells like... victory?",
		"Bob adds a dash of mystery spice.",
		"The stew thickens beautifully.",
		"Cooking up a storm!",
		"A weird aroma fills the air.",
	},
	types.ActionEat: {
		"Burp. Delicious.",
		"Bob feels rejuvenated.",
		"Yum! Tastes like chicken.",
		"Crunchy and satisfying.",
		"Bob licks his lips.",
		"Gulp. Gone.",
	},
	types.ActionUnlock: {
		"Bob is happy with his new toy!",
		"Upgrade acquired! Bob feels stronger.",
		"Shiny new gear for Bob.",
		"Look at that bling!",
		"Money well spent.",
		"Power overwhelming!",
	},
	types.ActionCraft: {
		"Bob mashes the meat together.",
		"A culinary masterpiece is born.",
		"Squish, squash, craft.",
		"Bob made a thing!",
		"It looks edible enough.",
		"Butchery at its finest.",
	},
	types.ActionEatSpecial: {
		"Tastes... powerful.",
		"Magic tingles in Bob's stomach.",
		"A surge of weird energy!",
		"Special snack consumed.",
		"Bob feels weirdly good.",
		"Strange texture, great effect.",
	},
	types.ActionConsumeOrgan: {
		"Squelch. Gulp.",
		"Slurped right down.",
		"Disgusting, but nutritious.",
		"Bob loves organ meat.",
		"Raw power... literally.",
		"Slimy, yet satisfying.",
	},
	types.ActionLevelUp: {
		"The horde grows stronger...",
		"Evolution at work. Scary.",
		"They are learning.",
		"Power radiates from the basement.",
		"A minion has ascended.",
		"Bob's army is improving.",
	},
	types.ActionUpgradeMinion: {
		"Bob sent them to weird school.",
		"Forced evolution. Effective.",
		"Training complete. Muscles bigger.",
		"They look smarter now. Maybe.",
		"A promotion! They work harder.",
		"Paid for better performance.",
	},
}
