package analysis

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseMovesShortSectionRewinds(t *testing.T) {
	cur := NewCursorFromText(strings.Join([]string{
		"Moves: Quake",
		"- Earthquake",
		"",
		"name: Other",
	}, "\n"))
	first, _ := cur.Next()

	got := ParseMoves(first, "xy", cur)
	want := [4]string{"Quake", "Earthquake", NullMove, NullMove}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
	if next, ok := cur.Next(); !ok || next != "" {
		t.Fatalf("next line = %q, %v; want the blank line", next, ok)
	}
}

func TestParseMovesStopsAtNonMoveLine(t *testing.T) {
	cur := NewCursorFromText("move 1: Surf\nitem: Leftovers\n")
	first, _ := cur.Next()

	got := ParseMoves(first, "xy", cur)
	if got != [4]string{"Surf", NullMove, NullMove, NullMove} {
		t.Fatalf("moves = %v", got)
	}
	if next, _ := cur.Next(); next != "item: Leftovers" {
		t.Fatalf("next line = %q, want item line", next)
	}
}

func TestParseMovesReadsExactlyFour(t *testing.T) {
	cur := NewCursorFromText(strings.Join([]string{
		"move 1: Thunderbolt",
		"move 2: Hidden Power Ice / Grass",
		"move 3: Volt Switch",
		"move 4: Roost",
		"move 5: Toxic",
	}, "\n"))
	first, _ := cur.Next()

	got := ParseMoves(first, "bw", cur)
	want := [4]string{"Thunderbolt", "Hidden Power Ice", "Volt Switch", "Roost"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
	if next, _ := cur.Next(); next != "move 5: Toxic" {
		t.Fatalf("fifth move line should be left unread, got %q", next)
	}
}

func TestParseMovesAtEndOfInput(t *testing.T) {
	cur := NewCursorFromText("move 1: Spore")
	first, _ := cur.Next()

	got := ParseMoves(first, "xy", cur)
	if got != [4]string{"Spore", NullMove, NullMove, NullMove} {
		t.Fatalf("moves = %v", got)
	}
	if !cur.Done() {
		t.Fatal("cursor should be exhausted")
	}
}

func TestParseMovesEmptyNameIsNull(t *testing.T) {
	cur := NewCursorFromText("move 1:\nmove 2: Protect")
	first, _ := cur.Next()
	got := ParseMoves(first, "xy", cur)
	if got[0] != NullMove || got[1] != "Protect" {
		t.Fatalf("moves = %v", got)
	}
}

func TestRenameMoveSkipsLatestGeneration(t *testing.T) {
	for legacy, current := range MoveRenames() {
		if got := RenameMove("dp", legacy); got != current {
			t.Errorf("RenameMove(dp, %q) = %q, want %q", legacy, got, current)
		}
		if got := RenameMove(LatestGeneration, legacy); got != legacy {
			t.Errorf("RenameMove(%s, %q) = %q, want unchanged", LatestGeneration, legacy, got)
		}
	}
	if got := RenameMove("rb", "Surf"); got != "Surf" {
		t.Fatalf("unlisted move renamed to %q", got)
	}
}

func TestParseMovesBareHeaderWithBullets(t *testing.T) {
	cur := NewCursorFromText(strings.Join([]string{
		"Moves:",
		"- Swords Dance",
		"- Earthquake",
		"- Stone Edge",
		"- Substitute",
		"item: Life Orb",
	}, "\n"))
	first, _ := cur.Next()

	got := ParseMoves(first, "xy", cur)
	want := [4]string{"Swords Dance", "Earthquake", "Stone Edge", "Substitute"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
	if next, _ := cur.Next(); next != "item: Life Orb" {
		t.Fatalf("next line = %q, want item line", next)
	}
}

func TestParseMovesBareHeaderWithoutBullets(t *testing.T) {
	cur := NewCursorFromText("Moves:\nitem: Leftovers\n")
	first, _ := cur.Next()

	got := ParseMoves(first, "xy", cur)
	if got != [4]string{NullMove, NullMove, NullMove, NullMove} {
		t.Fatalf("moves = %v", got)
	}
	if next, _ := cur.Next(); next != "item: Leftovers" {
		t.Fatalf("next line = %q, want item line", next)
	}
}
