package board

import "fmt"

// Kind is the content of a cell: either Empty or Occupied by a gem type
// The zero value is Empty
type Kind struct {
	id       uint8
	occupied bool
}

// Empty is the vacant cell kind
var Empty = Kind{}

// Occupied returns the kind for a gem type ID
func Occupied(typeID int) Kind {
	return Kind{id: uint8(typeID), occupied: true}
}

// Type returns the gem type and whether the kind is occupied
func (k Kind) Type() (int, bool) {
	return int(k.id), k.occupied
}

// IsEmpty reports whether the kind is vacant
func (k Kind) IsEmpty() bool {
	return !k.occupied
}

func (k Kind) String() string {
	if !k.occupied {
		return "empty"
	}
	return fmt.Sprintf("gem%d", k.id)
}

// Coord addresses a grid cell, column-major with row 0 at the top
type Coord struct {
	Col, Row int
}

// Adjacent reports a 4-directional neighbor: Manhattan distance exactly 1
func (c Coord) Adjacent(o Coord) bool {
	dc, dr := c.Col-o.Col, c.Row-o.Row
	if dc < 0 {
		dc = -dc
	}
	if dr < 0 {
		dr = -dr
	}
	return dc+dr == 1
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}
