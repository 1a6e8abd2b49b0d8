// Package resolve maps player-typed names to content ids.
package resolve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/buffetcore/engine/state"
	"github.com/nathoo/buffetcore/types"
)

// Candidate is one nameable thing the player may be referring to.
type Candidate struct {
	ID   string
	Name string
}

// AmbiguityError indicates multiple candidates matched a name.
type AmbiguityError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	names := e.Candidates
	if len(names) > 5 {
		names = append(names[:5:5], fmt.Sprintf("%d more", len(e.Candidates)-5))
	}
	return fmt.Sprintf("which %s? (%s)", e.Name, strings.Join(names, ", "))
}

// NotFoundError indicates nothing matched a name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("nothing called %q here", e.Name)
}

// Resolve picks the candidate the name refers to. In order it tries: a
// 1-based index into candidates, an exact id, an exact name, the name with
// spaces as underscores, and finally every query word appearing as a word
// of the candidate name. The first tier with a single hit wins.
func Resolve(name string, candidates []Candidate) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &NotFoundError{Name: name}
	}
	nameLower := strings.ToLower(name)

	if n, err := strconv.Atoi(nameLower); err == nil {
		if n >= 1 && n <= len(candidates) {
			return candidates[n-1].ID, nil
		}
		return "", &NotFoundError{Name: name}
	}

	tiers := []func(Candidate) bool{
		func(c Candidate) bool { return strings.ToLower(c.ID) == nameLower },
		func(c Candidate) bool { return strings.ToLower(c.Name) == nameLower },
		func(c Candidate) bool { return strings.ToLower(c.ID) == strings.ReplaceAll(nameLower, " ", "_") },
		func(c Candidate) bool { return containsWords(strings.ToLower(c.Name), nameLower) },
	}
	for _, match := range tiers {
		var hits []Candidate
		for _, c := range candidates {
			if match(c) {
				hits = append(hits, c)
			}
		}
		switch len(hits) {
		case 0:
			continue
		case 1:
			return hits[0].ID, nil
		default:
			names := make([]string, len(hits))
			for i, h := range hits {
				names[i] = h.Name
			}
			return "", &AmbiguityError{Name: name, Candidates: names}
		}
	}
	return "", &NotFoundError{Name: name}
}

// containsWords reports whether every word of query is a word of name.
func containsWords(name, query string) bool {
	words := strings.Fields(name)
	for _, q := range strings.Fields(query) {
		found := false
		for _, w := range words {
			if w == q {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// HireWindow is how many unhired minions the shop offers at once.
const HireWindow = 3

// ShopWindow is how many unpurchased upgrades the shop offers at once.
const ShopWindow = 3

// Hireable lists the hire window followed by already-owned minions, which
// can be hired again.
func Hireable(s *types.GameState, defs *state.Defs) []Candidate {
	var out []Candidate
	for _, m := range state.HireableMinions(s, defs, HireWindow) {
		out = append(out, Candidate{ID: m.ID, Name: m.Name})
	}
	return append(out, Owned(s, defs)...)
}

// Owned lists minions with at least one unit, in content order.
func Owned(s *types.GameState, defs *state.Defs) []Candidate {
	var out []Candidate
	for _, id := range state.OwnedMinions(s, defs) {
		m, _ := defs.Minion(id)
		out = append(out, Candidate{ID: id, Name: m.Name})
	}
	return out
}

// Shop lists the upgrades currently on offer.
func Shop(s *types.GameState, defs *state.Defs) []Candidate {
	var out []Candidate
	for _, u := range state.VisibleUpgrades(s, defs, ShopWindow) {
		out = append(out, Candidate{ID: u.ID, Name: u.Name})
	}
	return out
}

// Recipes lists every craftable item.
func Recipes(defs *state.Defs) []Candidate {
	out := make([]Candidate, 0, len(defs.Craftables))
	for _, c := range defs.Craftables {
		out = append(out, Candidate{ID: c.ID, Name: c.Name})
	}
	return out
}

// Edible lists pantry items and organs the player holds, pantry first.
func Edible(s *types.GameState, defs *state.Defs) []Candidate {
	var out []Candidate
	for _, c := range defs.Craftables {
		if s.Pantry[c.ID] > 0 {
			out = append(out, Candidate{ID: c.ID, Name: c.Name})
		}
	}
	for _, o := range defs.Organs {
		if s.Organs[o.ID] > 0 {
			out = append(out, Candidate{ID: o.ID, Name: o.Name})
		}
	}
	return out
}
