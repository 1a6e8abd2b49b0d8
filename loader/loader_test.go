package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathoo/buffetcore/types"
)

// writePack writes name → source files into a fresh directory.
func writePack(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoad_MinimalPack(t *testing.T) {
	dir := writePack(t, map[string]string{
		"content.lua": `Generate { hunters = 3, feeders = 1, leeches = 1, upgrades_per_kind = 1 }`,
	})

	tables, err := Load(dir, tinyParams())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tables.Minions) != 5 {
		t.Errorf("minions = %d, want 5", len(tables.Minions))
	}
	if len(tables.Upgrades) != 4+4 {
		t.Errorf("upgrades = %d, want 8", len(tables.Upgrades))
	}
}

func TestLoad_FileOrdering(t *testing.T) {
	// content.lua runs first; later files override by id in name order.
	dir := writePack(t, map[string]string{
		"b_more.lua":  `Organ "spleen" { name = "Late Spleen", chance = 0.1, effect = "HEAL", value = 1 }`,
		"a_extra.lua": `Organ "spleen" { name = "Early Spleen", chance = 0.1, effect = "HEAL", value = 1 }`,
		"content.lua": `Organ "spleen" { name = "First Spleen", chance = 0.1, effect = "HEAL", value = 1 }`,
	})

	tables, err := Load(dir, tinyParams())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defs := tables.Defs()
	spleen, ok := defs.Organ("spleen")
	if !ok {
		t.Fatal("spleen not loaded")
	}
	if spleen.Name != "Late Spleen" {
		t.Errorf("spleen name = %q, want the last file's", spleen.Name)
	}
	if len(tables.Organs) != 7 {
		t.Errorf("organs = %d, want 7", len(tables.Organs))
	}
}

func TestSortedLuaFiles(t *testing.T) {
	got := sortedLuaFiles([]string{"z.lua", "content.lua", "a.lua"})
	want := []string{"content.lua", "a.lua", "z.lua"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestLoad_InvalidContent_Fails(t *testing.T) {
	dir := writePack(t, map[string]string{
		"content.lua": `
			Minion "clown" { name = "Clown", role = "JESTER", cost = 10, rate = 1 }
			Craftable "mystery" { name = "Mystery", effect = "HEAL", ingredients = { unicorn = 1 } }
		`,
	})

	_, err := Load(dir, tinyParams())
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	assertContains(t, ve.Errors, "unknown role")
	assertContains(t, ve.Errors, `undefined ingredient "unicorn"`)
}

func TestLoad_NegativeEffectValues_Fails(t *testing.T) {
	dir := writePack(t, map[string]string{
		"content.lua": `
			Generate { hunters = 0, feeders = 0, leeches = 0, upgrades_per_kind = 0 }
			Upgrade "cursed_boots" { name = "Cursed Boots", kind = "HUNT", value = -0.5, cost = 0 }
			Upgrade "leaky_sack" { name = "Leaky Sack", kind = "MEAT", value = -3, cost = 0 }
			Upgrade "tax_man" { name = "Tax Man", kind = "COIN", value = -2, cost = 0 }
			Organ "appendix" { name = "Appendix", effect = "BUFF_MAX_HP", value = -5, chance = 0.1 }
		`,
	})

	_, err := Load(dir, tinyParams())
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, id := range []string{"cursed_boots", "leaky_sack", "tax_man", "appendix"} {
		assertContains(t, ve.Errors, fmt.Sprintf("%q has negative value", id))
	}
}

func TestLoad_BadLuaSyntax_Fails(t *testing.T) {
	dir := writePack(t, map[string]string{"content.lua": `Organ "x" {`})
	_, err := Load(dir, tinyParams())
	if err == nil || !strings.Contains(err.Error(), "executing content.lua") {
		t.Errorf("expected execution error, got %v", err)
	}
}

func TestLoad_SandboxEnforced(t *testing.T) {
	for _, src := range []string{
		`dofile("/etc/passwd")`,
		`load("return 1")()`,
		`math.randomseed(42)`,
		`os.exit(1)`,
		`io.write("hi")`,
	} {
		dir := writePack(t, map[string]string{"content.lua": src})
		if _, err := Load(dir, tinyParams()); err == nil {
			t.Errorf("sandbox allowed %q", src)
		}
	}
}

func TestLoad_NoLuaFiles_Fails(t *testing.T) {
	dir := writePack(t, map[string]string{"README.txt": "nothing here"})
	if _, err := Load(dir, tinyParams()); err == nil || !strings.Contains(err.Error(), "no .lua files") {
		t.Errorf("expected no-files error, got %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing"), tinyParams()); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestLoad_ExamplePack(t *testing.T) {
	tables, err := Load("../packs/gourmet", tinyParams())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defs := tables.Defs()

	if _, ok := defs.Organ("spleen"); !ok {
		t.Error("gourmet pack should add a spleen")
	}
	pie, ok := defs.Craftable("spleen_pie")
	if !ok {
		t.Fatal("gourmet pack should add spleen_pie")
	}
	if pie.Ingredients["spleen"] != 2 || pie.Effect != types.ItemCoinWind {
		t.Errorf("spleen_pie = %+v", pie)
	}
	if m, ok := defs.Minion("chef_gordon"); !ok || m.Role != types.RoleChef {
		t.Errorf("chef_gordon = %+v, %v", m, ok)
	}
	crown, ok := defs.Upgrade("gravy_crown")
	if !ok || !crown.Cosmetics.Hat || !crown.Cosmetics.Bling {
		t.Errorf("gravy_crown = %+v", crown)
	}
}
