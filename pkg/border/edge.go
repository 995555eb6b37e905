package border

import (
	"fmt"

	"github.com/go-drift/imageview/pkg/errors"
	"github.com/go-drift/imageview/pkg/layout"
)

// Edge identifies one of the nine edge slots.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeStart
	EdgeEnd
	EdgeHorizontal
	EdgeVertical
	EdgeAll

	edgeCount
)

var edgeNames = [edgeCount]string{
	"left", "top", "right", "bottom", "start", "end", "horizontal", "vertical", "all",
}

// String returns a human-readable representation of the edge slot.
func (e Edge) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Edge(%d)", int(e))
	}
	return edgeNames[e]
}

// Valid reports whether e is one of the nine slots.
func (e Edge) Valid() bool {
	return e >= 0 && e < edgeCount
}

func checkEdge(op string, pos Edge) {
	if !pos.Valid() {
		errors.Invariantf(op, "edge position %d out of range [0, %d]", int(pos), int(edgeCount)-1)
	}
}

// Edges holds one resolved value per physical edge.
type Edges struct {
	Left, Top, Right, Bottom float64
}

// IsUniform reports whether all four edges hold the same value.
func (e Edges) IsUniform() bool {
	return e.Left == e.Top && e.Top == e.Right && e.Right == e.Bottom
}

// Scale returns the edges converted with units.
func (e Edges) Scale(units layout.UnitConverter) Edges {
	return Edges{
		Left:   layout.ToPixels(units, e.Left),
		Top:    layout.ToPixels(units, e.Top),
		Right:  layout.ToPixels(units, e.Right),
		Bottom: layout.ToPixels(units, e.Bottom),
	}
}

// EdgeSet holds nine edge slots in [Edge] order plus the value used when no
// slot applies to an edge.
type EdgeSet struct {
	slots [edgeCount]Value
	def   float64
}

// NewEdgeSet returns a set with every slot undefined and the given default.
func NewEdgeSet(def float64) EdgeSet {
	return EdgeSet{def: def}
}

// Set stores v at pos and reports whether the slot changed. An invalid
// position panics.
func (s *EdgeSet) Set(pos Edge, v Value) bool {
	checkEdge("border.EdgeSet.Set", pos)
	if s.slots[pos].Equal(v) {
		return false
	}
	s.slots[pos] = v
	return true
}

// Get returns the slot at pos. An invalid position panics.
func (s *EdgeSet) Get(pos Edge) Value {
	checkEdge("border.EdgeSet.Get", pos)
	return s.slots[pos]
}

// Resolve returns the value of each physical edge. Start and end apply to
// the left and right edges according to dir.
func (s *EdgeSet) Resolve(dir layout.TextDirection) Edges {
	left, right := s.slots[EdgeStart], s.slots[EdgeEnd]
	if dir.IsRTL() {
		left, right = right, left
	}
	horizontal, vertical, all := s.slots[EdgeHorizontal], s.slots[EdgeVertical], s.slots[EdgeAll]
	pick := func(values ...Value) float64 {
		for _, v := range values {
			if v.IsDefined() {
				return v.Float()
			}
		}
		return s.def
	}
	return Edges{
		Left:   pick(s.slots[EdgeLeft], left, horizontal, all),
		Top:    pick(s.slots[EdgeTop], vertical, all),
		Right:  pick(s.slots[EdgeRight], right, horizontal, all),
		Bottom: pick(s.slots[EdgeBottom], vertical, all),
	}
}
