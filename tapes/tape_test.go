package tapes

import (
	"bytes"
	"testing"
)

func TestTouchRight(t *testing.T) {
	tape := New(4, 0)
	pos := tape.Touch(2, 10, 0)
	if pos != 2 {
		t.Fatalf("got %d", pos)
	}
	if len(tape.Cells) < 13 {
		t.Fatalf("got %d", len(tape.Cells))
	}
	tape.Cells[pos+10] = 7
	if tape.Cell(12) != 7 {
		t.Fatal()
	}
}

func TestTouchLeft(t *testing.T) {
	tape := New(4, 1)
	tape.Cells[1] = 42
	pos := tape.Touch(1, 0, -5)
	if pos-5 < 0 {
		t.Fatalf("got %d", pos)
	}
	if tape.Logical(pos) != 0 {
		t.Fatalf("got %d", tape.Logical(pos))
	}
	if tape.Cells[pos] != 42 {
		t.Fatal("cell moved")
	}
	if tape.Cell(0) != 42 {
		t.Fatal()
	}
	low, high := tape.Bounds()
	if low > -5 || high < 3 {
		t.Fatalf("got %d %d", low, high)
	}
}

func TestTouchIdempotent(t *testing.T) {
	tape := New(0, 0)
	pos := tape.Touch(0, 3, -3)
	size := len(tape.Cells)
	zero := tape.Zero
	for range 10 {
		pos = tape.Touch(pos, 3, -3)
	}
	if len(tape.Cells) != size || tape.Zero != zero {
		t.Fatal("tape grew again")
	}
	if tape.Logical(pos) != 0 {
		t.Fatalf("got %d", tape.Logical(pos))
	}
}

func TestTouchAmortized(t *testing.T) {
	tape := New(1, 0)
	pos := 0
	grows := 0
	for range 1 << 14 {
		before := len(tape.Cells)
		pos = tape.Touch(pos, 0, -1)
		pos--
		if len(tape.Cells) != before {
			grows++
		}
	}
	if grows > 20 {
		t.Fatalf("grew %d times", grows)
	}
	if tape.Logical(pos) != -(1 << 14) {
		t.Fatalf("got %d", tape.Logical(pos))
	}
}

func TestAtOutside(t *testing.T) {
	tape := New(2, 0)
	if tape.At(-1) != 0 || tape.At(2) != 0 {
		t.Fatal()
	}
}

func TestSlice(t *testing.T) {
	tape := New(3, 1)
	copy(tape.Cells, []byte{1, 2, 3})
	if got := tape.Slice(-2, 3); !bytes.Equal(got, []byte{0, 1, 2, 3, 0}) {
		t.Fatalf("got %v", got)
	}
}
