package analysis

import "testing"

func TestRepairLine(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"slash missing trailing space", "item: Leftovers /Life Orb", "item: Leftovers / Life Orb"},
		{"slash missing leading space", "nature: Jolly/ Adamant", "nature: Jolly / Adamant"},
		{"spaced slash untouched", "evs: 252 Atk / 4 SpD", "evs: 252 Atk / 4 SpD"},
		{"space before colon", "item : Eviolite", "item: Eviolite"},
		{"plural evs", "evss: 252 HP", "evs: 252 HP"},
		{"plural item", "items: Choice Band", "item: Choice Band"},
		{"reversed iv", "ivs: HP 0", "ivs: 0 HP"},
		{"empty item", "item:", ""},
		{"alternative", "ability: Swift Swim or Rain Dish", "ability: Swift Swim"},
		{"bare iv", "4 HP IVs", "ivs: 4 HP"},
		{"no match", "nature: Timid", "nature: Timid"},
		{"slash rule wins over colon rule", "item :Leftovers/ Life Orb", "item :Leftovers / Life Orb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RepairLine(tc.in); got != tc.want {
				t.Fatalf("RepairLine(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
