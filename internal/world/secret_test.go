package world

import (
	"slices"
	"testing"
)

// junctionLevel has a corridor along y=3 with a T junction at x=1. When
// branch is set the far end also forks.
func junctionLevel(branch bool) *Level {
	far := "#.........#"
	if !branch {
		far = "#.........#"[:7] + "####"
	}
	rows := []string{
		"###########",
		"#.#########",
		"#.#########",
		far,
		"#.#########",
		"#.#########",
		"###########",
	}
	if branch {
		rows[1] = "#.#######.#"
		rows[2] = "#.#######.#"
		rows[4] = "#.#######.#"
		rows[5] = "#.#######.#"
	}
	return levelFrom(rows...)
}

func TestIntersections(t *testing.T) {
	got := junctionLevel(true).intersections()
	want := []Point{{1, 3}, {9, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("intersections = %v, want %v", got, want)
	}

	// An open room is not a junction: its cells have walkable diagonals.
	room := levelFrom(
		"#######",
		"#.....#",
		"#.....#",
		"#.....#",
		"#######",
	)
	if got := room.intersections(); len(got) != 0 {
		t.Errorf("room should have no intersections, got %v", got)
	}
}

func TestCarveSecretPassageToBranch(t *testing.T) {
	l := junctionLevel(true)
	g := &generator{level: l, rng: lowRand{}}

	p, err := g.carveSecretPassage(Pt(1, 3), East)
	if err != nil {
		t.Fatalf("carveSecretPassage: %v", err)
	}
	if p.Start != Pt(2, 3) || p.End != Pt(8, 3) {
		t.Errorf("passage = %v, want (2,3)..(8,3)", p)
	}
	if l.Tile(p.Start) != TileSecretDoor || l.Tile(p.End) != TileSecretDoor {
		t.Errorf("ends are %v and %v", l.Tile(p.Start), l.Tile(p.End))
	}
	for x := p.Start.X + 1; x < p.End.X; x++ {
		if l.Tile(Pt(x, 3)) != TileFloor {
			t.Errorf("cell (%d,3) inside the passage is %v", x, l.Tile(Pt(x, 3)))
		}
	}
	want := []Point{{3, 3}, {4, 3}, {5, 3}, {6, 3}, {7, 3}}
	if !slices.Equal(p.Path, want) {
		t.Errorf("Path = %v, want %v", p.Path, want)
	}
}

func TestCarveSecretPassageDeadEnd(t *testing.T) {
	l := junctionLevel(false)
	g := &generator{level: l, rng: lowRand{}}

	p, err := g.carveSecretPassage(Pt(1, 3), East)
	if err != nil {
		t.Fatalf("carveSecretPassage: %v", err)
	}
	if p.End != Pt(5, 3) {
		t.Errorf("dead end should close at (5,3), got %v", p.End)
	}
	if !slices.Equal(p.Path, []Point{{3, 3}, {4, 3}}) {
		t.Errorf("Path = %v, want (3,3) (4,3)", p.Path)
	}
	if l.Count(TileSecretDoor) != 2 {
		t.Errorf("expected 2 secret doors, got %d", l.Count(TileSecretDoor))
	}
}

func TestSecretDoorBlocksUntilRevealed(t *testing.T) {
	l := junctionLevel(true)
	g := &generator{level: l, rng: lowRand{}}
	p, err := g.carveSecretPassage(Pt(1, 3), East)
	if err != nil {
		t.Fatalf("carveSecretPassage: %v", err)
	}

	if l.Reachable(Pt(1, 1), Tile.IsWalkable).Has(Pt(9, 1)) {
		t.Error("secret doors should cut the corridor for walkers")
	}
	if !l.Reachable(Pt(1, 1), Tile.IsTraversable).Has(Pt(9, 1)) {
		t.Error("secret doors should still count for connectivity")
	}

	if !l.RevealSecretDoor(p.Start) || !l.OpenDoor(p.Start) {
		t.Fatal("revealing and opening the first door should succeed")
	}
	if !l.RevealSecretDoor(p.End) || !l.OpenDoor(p.End) {
		t.Fatal("revealing and opening the second door should succeed")
	}
	if !l.Reachable(Pt(1, 1), Tile.IsWalkable).Has(Pt(9, 1)) {
		t.Error("opened passage should be walkable end to end")
	}
}
