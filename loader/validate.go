package loader

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/nathoo/buffetcore/content"
	"github.com/nathoo/buffetcore/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

var validRoles = map[types.Role]bool{
	types.RoleHunter: true,
	types.RoleChef:   true,
	types.RoleFeeder: true,
	types.RoleLeech:  true,
}

var validOrganEffects = map[types.OrganEffect]bool{
	types.OrganHeal:      true,
	types.OrganCoins:     true,
	types.OrganBuffMaxHP: true,
	types.OrganBuffHunt:  true,
}

var validItemEffects = map[types.ItemEffect]bool{
	types.ItemHeal:      true,
	types.ItemBuffHunt:  true,
	types.ItemBuffMaxHP: true,
	types.ItemCoinWind:  true,
}

var validUpgradeKinds = map[types.UpgradeKind]bool{
	types.UpgradeMeat: true,
	types.UpgradeHunt: true,
	types.UpgradeHP:   true,
	types.UpgradeCoin: true,
}

// Validate checks the tables for unknown kinds, out-of-range numbers,
// duplicate ids and unresolvable recipe ingredients. Effect values may not
// be negative: player stats only ever grow. Warnings are printed
// to stderr and do not fail validation.
func Validate(t content.Tables) error {
	ve := &ValidationError{}
	errorf := func(format string, args ...any) {
		ve.Errors = append(ve.Errors, fmt.Sprintf(format, args...))
	}
	warnf := func(format string, args ...any) {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf(format, args...))
	}

	seen := map[string]bool{}
	for _, m := range t.Minions {
		checkID(ve, seen, "minion", m.ID, m.Name)
		if !validRoles[m.Role] {
			errorf("minion %q has unknown role %q", m.ID, m.Role)
		}
		if m.Cost < 0 {
			errorf("minion %q has negative cost %d", m.ID, m.Cost)
		}
		if m.Rate < 0 {
			errorf("minion %q has negative rate %v", m.ID, m.Rate)
		}
	}

	organs := map[string]bool{}
	for _, o := range t.Organs {
		checkID(ve, organs, "organ", o.ID, o.Name)
		if !validOrganEffects[o.Effect] {
			errorf("organ %q has unknown effect %q", o.ID, o.Effect)
		}
		if o.Value < 0 {
			errorf("organ %q has negative value %v", o.ID, o.Value)
		}
		if o.Chance < 0 || o.Chance > 1 {
			errorf("organ %q drop chance %v outside [0, 1]", o.ID, o.Chance)
		} else if o.Chance == 0 {
			warnf("organ %q never drops", o.ID)
		}
	}

	elements := map[string]bool{}
	for _, e := range t.Elements {
		checkID(ve, elements, "element", e.ID, e.Name)
	}

	seen = map[string]bool{}
	for _, c := range t.Craftables {
		checkID(ve, seen, "craftable", c.ID, c.Name)
		if !validItemEffects[c.Effect] {
			errorf("craftable %q has unknown effect %q", c.ID, c.Effect)
		}
		if c.Value < 0 {
			errorf("craftable %q has negative value %v", c.ID, c.Value)
		}
		if len(c.Ingredients) == 0 {
			warnf("craftable %q needs no ingredients", c.ID)
		}
		for id, q := range c.Ingredients {
			if q <= 0 {
				errorf("craftable %q ingredient %q has quantity %d", c.ID, id, q)
			}
			if id == types.IngredientRawMeat || id == types.IngredientMeals {
				continue
			}
			if !organs[id] && !elements[id] {
				errorf("craftable %q uses undefined ingredient %q", c.ID, id)
			}
		}
	}

	seen = map[string]bool{}
	for _, u := range t.Upgrades {
		checkID(ve, seen, "upgrade", u.ID, u.Name)
		if !validUpgradeKinds[u.Kind] {
			errorf("upgrade %q has unknown kind %q", u.ID, u.Kind)
		}
		if u.Cost < 0 {
			errorf("upgrade %q has negative cost %d", u.ID, u.Cost)
		}
		switch {
		case u.Value < 0:
			errorf("upgrade %q has negative value %v", u.ID, u.Value)
		case u.Kind == types.UpgradeMeat && math.Round(u.Value) == 0:
			warnf("upgrade %q adds no meat per hunt", u.ID)
		}
	}

	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func checkID(ve *ValidationError, seen map[string]bool, kind, id, name string) {
	if id == "" {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s with empty id", kind))
		return
	}
	if seen[id] {
		ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate %s id %q", kind, id))
	}
	seen[id] = true
	if name == "" {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s %q has no name", kind, id))
	}
}
