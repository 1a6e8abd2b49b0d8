// Package loot rolls organ and element drops for resolved kills.
package loot

import (
	"fmt"
	"strings"

	"github.com/nathoo/buffetcore/engine/state"
)

// Roller is the randomness source for drops.
type Roller interface {
	Float64() float64
	Intn(n int) int
}

// Drops is a combined tally of everything found across one resolution.
type Drops struct {
	Organs   map[string]int
	Elements map[string]int
}

// Roll resolves drops for the given number of whole kills. For each kill,
// every organ rolls its own drop chance independently, then one flat roll
// of elementChance awards a uniformly chosen element.
func Roll(defs *state.Defs, rng Roller, kills int, elementChance float64) Drops {
	d := Drops{Organs: map[string]int{}, Elements: map[string]int{}}
	for k := 0; k < kills; k++ {
		for _, organ := range defs.Organs {
			if rng.Float64() < organ.Chance {
				d.Organs[organ.ID]++
			}
		}
		if rng.Float64() < elementChance && len(defs.Elements) > 0 {
			elem := defs.Elements[rng.Intn(len(defs.Elements))]
			d.Elements[elem.ID]++
		}
	}
	return d
}

// Empty reports whether nothing dropped.
func (d Drops) Empty() bool {
	return d.Total() == 0
}

// Total is the number of items dropped.
func (d Drops) Total() int {
	n := 0
	for _, q := range d.Organs {
		n += q
	}
	for _, q := range d.Elements {
		n += q
	}
	return n
}

// Merge adds other into d.
func (d *Drops) Merge(other Drops) {
	if d.Organs == nil {
		d.Organs = map[string]int{}
	}
	if d.Elements == nil {
		d.Elements = map[string]int{}
	}
	for id, q := range other.Organs {
		d.Organs[id] += q
	}
	for id, q := range other.Elements {
		d.Elements[id] += q
	}
}

// Entry is one dropped item with its quantity.
type Entry struct {
	ID       string
	Name     string
	Quantity int
}

// Entries lists the drops in content table order: organs first, then elements.
func (d Drops) Entries(defs *state.Defs) []Entry {
	var out []Entry
	for _, o := range defs.Organs {
		if q := d.Organs[o.ID]; q > 0 {
			out = append(out, Entry{ID: o.ID, Name: o.Name, Quantity: q})
		}
	}
	for _, e := range defs.Elements {
		if q := d.Elements[e.ID]; q > 0 {
			out = append(out, Entry{ID: e.ID, Name: e.Name, Quantity: q})
		}
	}
	return out
}

// Summary renders "2 Eyeball, 1 Gold".
func (d Drops) Summary(defs *state.Defs) string {
	entries := d.Entries(defs)
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%d %s", e.Quantity, e.Name))
	}
	return strings.Join(parts, ", ")
}

// Announcement renders the manual-hunt drop line, one "Found a X!" per item.
func (d Drops) Announcement(defs *state.Defs) string {
	entries := d.Entries(defs)
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("Found a %s!", e.Name))
	}
	return strings.Join(parts, " ")
}
