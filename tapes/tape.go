package tapes

// Tape is a zero-initialized byte tape that grows in both directions.
// Cursors handed to and returned from Touch are physical indexes into Cells;
// Zero is the physical index of logical cell 0 and moves right whenever the
// tape grows on the left.
type Tape struct {
	Cells []byte
	Zero  int
}

const minGrowth = 32

// New returns a tape with size materialized cells whose logical cell 0 is
// at physical index zero. zero may lie outside [0, size).
func New(size, zero int) *Tape {
	return &Tape{
		Cells: make([]byte, max(size, 0)),
		Zero:  zero,
	}
}

// Touch materializes every cell in [pos+low, pos+high] and returns pos
// adjusted for any growth on the left.
func (t *Tape) Touch(pos, high, low int) int {
	if first := pos + low; first < 0 {
		n := max(-first, len(t.Cells), minGrowth)
		cells := make([]byte, n+len(t.Cells), n+cap(t.Cells))
		copy(cells[n:], t.Cells)
		t.Cells = cells
		t.Zero += n
		pos += n
	}
	if last := pos + high; last >= len(t.Cells) {
		n := max(last+1-len(t.Cells), len(t.Cells), minGrowth)
		t.Cells = append(t.Cells, make([]byte, n)...)
	}
	return pos
}

// At reads the cell at pos, treating cells that were never materialized as
// zero.
func (t *Tape) At(pos int) byte {
	if pos < 0 || pos >= len(t.Cells) {
		return 0
	}
	return t.Cells[pos]
}

// Cell reads the cell at a logical index.
func (t *Tape) Cell(index int) byte {
	return t.At(t.Zero + index)
}

// Logical converts a physical cursor to a logical index.
func (t *Tape) Logical(pos int) int {
	return pos - t.Zero
}

// Bounds returns the logical range of materialized cells as [low, high).
func (t *Tape) Bounds() (low, high int) {
	return -t.Zero, len(t.Cells) - t.Zero
}

// Slice returns a copy of the logical cells in [low, high).
func (t *Tape) Slice(low, high int) []byte {
	ret := make([]byte, 0, max(high-low, 0))
	for i := low; i < high; i++ {
		ret = append(ret, t.Cell(i))
	}
	return ret
}
