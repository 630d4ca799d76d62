package sim

import (
	"math/rand"
	"strings"
	"testing"
)

func checkSymmetry(t *testing.T, b *Board) {
	t.Helper()
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			p := P(x, y)
			for _, d := range []Dir{DirNorth, DirSouth, DirEast, DirWest} {
				if !b.CanMove(p, d) {
					continue
				}
				n := p.Step(d)
				if !b.InBounds(n) {
					t.Fatalf("%v allows %v off the board", p, d)
				}
				if !b.CanMove(n, d.Opposite()) {
					t.Errorf("%v allows %v but %v does not allow %v", p, d, n, d.Opposite())
				}
			}
		}
	}
}

func TestBuildTraversalSymmetry(t *testing.T) {
	b, err := Build(testMaze().Layout)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	checkSymmetry(t, b)

	rng := rand.New(rand.NewSource(7))
	tiles := []byte{'#', ' ', '.', 'o'}
	for n := 0; n < 20; n++ {
		rows := make([]string, 6+rng.Intn(6))
		w := 4 + rng.Intn(10)
		for y := range rows {
			var sb strings.Builder
			for x := 0; x < w; x++ {
				sb.WriteByte(tiles[rng.Intn(len(tiles))])
			}
			rows[y] = sb.String()
		}
		b, err := Build(Layout{Rows: rows, Legend: DefaultLegend()})
		if err != nil {
			t.Fatalf("Build(random %d) error: %v", n, err)
		}
		checkSymmetry(t, b)
	}
}

func TestBuildCells(t *testing.T) {
	b, err := Build(testMaze().Layout)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if b.W != 9 || b.H != 7 {
		t.Fatalf("size = %dx%d, expected 9x7", b.W, b.H)
	}
	// 4 power + 23 small
	if b.Remaining() != 27 {
		t.Errorf("Remaining() = %d, expected 27", b.Remaining())
	}
	if b.Item(P(1, 1)) != ConsumablePower {
		t.Errorf("Item(1,1) = %v, expected power", b.Item(P(1, 1)))
	}
	if b.Open(P(0, 0)) || b.Cell(P(0, 0)) != 0 {
		t.Error("wall cell should be closed with no traversal bits")
	}
	// Junction in the middle row.
	want := CanNorth | CanSouth | CanEast | CanWest
	if got := b.Cell(P(4, 3)); got != want {
		t.Errorf("Cell(4,3) = %04b, expected %04b", got, want)
	}
	if got := b.Cell(P(1, 1)); got != CanSouth|CanEast {
		t.Errorf("Cell(1,1) = %04b, expected %04b", got, CanSouth|CanEast)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
	}{
		{"no rows", Layout{Legend: DefaultLegend()}},
		{"no legend", Layout{Rows: []string{" "}}},
		{"empty row", Layout{Rows: []string{""}, Legend: DefaultLegend()}},
		{"ragged", Layout{Rows: []string{"   ", "  "}, Legend: DefaultLegend()}},
		{"unknown tile", Layout{Rows: []string{" x "}, Legend: DefaultLegend()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.layout); err == nil {
				t.Error("Build should fail")
			}
		})
	}
}

func TestBuildCustomLegend(t *testing.T) {
	legend := map[byte]TileClass{'X': TileClassWall, '_': TileClassOpen, '*': TileClassPower}
	b, err := Build(Layout{Rows: []string{"X_*X"}, Legend: legend})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if !b.CanMove(P(1, 0), DirEast) || b.CanMove(P(2, 0), DirEast) {
		t.Error("custom legend traversal mismatch")
	}
	if b.Remaining() != 1 {
		t.Errorf("Remaining() = %d, expected 1", b.Remaining())
	}
}

func TestConsume(t *testing.T) {
	b, err := Build(Layout{Rows: []string{".o "}, Legend: DefaultLegend()})
	if err != nil {
		t.Fatal(err)
	}

	if got := b.Consume(P(0, 0)); got != ConsumableSmall {
		t.Errorf("Consume = %v, expected small", got)
	}
	if got := b.Consume(P(0, 0)); got != ConsumableNone {
		t.Errorf("second Consume = %v, expected none", got)
	}
	if b.Remaining() != 1 {
		t.Errorf("Remaining() = %d, expected 1", b.Remaining())
	}

	if b.PlaceBonus(P(1, 0)) {
		t.Error("PlaceBonus on an occupied cell should fail")
	}
	if !b.PlaceBonus(P(2, 0)) {
		t.Fatal("PlaceBonus on an empty cell should succeed")
	}
	if got := b.Consume(P(2, 0)); got != ConsumableBonus {
		t.Errorf("Consume = %v, expected bonus", got)
	}
	if b.Remaining() != 1 {
		t.Errorf("bonus changed Remaining() to %d", b.Remaining())
	}

	if got := b.Consume(P(1, 0)); got != ConsumablePower {
		t.Errorf("Consume = %v, expected power", got)
	}
	if b.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0", b.Remaining())
	}
}

func TestCellOutOfRangePanics(t *testing.T) {
	b, err := Build(Layout{Rows: []string{"  "}, Legend: DefaultLegend()})
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("Cell out of range should panic")
		}
	}()
	b.Cell(P(5, 0))
}

func TestHexRows(t *testing.T) {
	b, err := Build(Layout{Rows: []string{" .", "o#"}, Legend: DefaultLegend()})
	if err != nil {
		t.Fatal(err)
	}
	rows := b.HexRows()
	if rows[0] != "06 18" {
		t.Errorf("row 0 = %q, expected %q", rows[0], "06 18")
	}
	if rows[1] != "21 00" {
		t.Errorf("row 1 = %q, expected %q", rows[1], "21 00")
	}
}

func TestBoardClone(t *testing.T) {
	b, err := Build(Layout{Rows: []string{".."}, Legend: DefaultLegend()})
	if err != nil {
		t.Fatal(err)
	}
	c := b.Clone()
	c.Consume(P(0, 0))
	if b.Item(P(0, 0)) != ConsumableSmall || b.Remaining() != 2 {
		t.Error("Clone shares state with the original")
	}
}
