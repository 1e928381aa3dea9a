package models

const (
	// BoardRows is the number of grid rows
	BoardRows = 6

	// BoardCols is the number of grid columns
	BoardCols = 3

	// MaxValue is the highest value on the board; values run 1..MaxValue
	MaxValue = 9
)

// Slot is a grid position
type Slot struct {
	Row int
	Col int
}

// InBounds reports whether the slot lies inside a rows×cols grid.
func (s Slot) InBounds(rows, cols int) bool {
	return s.Row >= 0 && s.Row < rows && s.Col >= 0 && s.Col < cols
}

// Placement binds a sequence value to a slot
type Placement struct {
	Slot  Slot
	Value int
}

// Board is the dealt grid. Placements are kept in the order they were made,
// which is also the order of the shuffled sequence.
type Board struct {
	Rows       int
	Cols       int
	Placements []Placement
}

// ValueAt returns the value placed at slot, or 0 when the slot is empty.
func (b *Board) ValueAt(slot Slot) int {
	for _, p := range b.Placements {
		if p.Slot == slot {
			return p.Value
		}
	}
	return 0
}

// SlotOf returns the slot holding value.
func (b *Board) SlotOf(value int) (Slot, bool) {
	for _, p := range b.Placements {
		if p.Value == value {
			return p.Slot, true
		}
	}
	return Slot{}, false
}

// RowMajor returns the placements sorted by row then column.
func (b *Board) RowMajor() []Placement {
	out := make([]Placement, 0, len(b.Placements))
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if v := b.ValueAt(Slot{Row: r, Col: c}); v != 0 {
				out = append(out, Placement{Slot: Slot{Row: r, Col: c}, Value: v})
			}
		}
	}
	return out
}
