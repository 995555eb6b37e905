package graphics

import "testing"

func TestAddRRectSquareCornersHaveNoCurves(t *testing.T) {
	p := NewPath()
	p.AddRRect(RRect{Rect: RectFromLTWH(0, 0, 10, 10)})
	for _, cmd := range p.Commands {
		if cmd.Op == PathOpCubicTo {
			t.Fatalf("unexpected curve in square rect: %+v", p.Commands)
		}
	}
	if last := p.Commands[len(p.Commands)-1]; last.Op != PathOpClose {
		t.Errorf("last op = %v, want close", last.Op)
	}
}

func TestAddRRectOneCurvePerRoundedCorner(t *testing.T) {
	p := NewPath()
	p.AddRRect(RRectFromRectAndCorners(RectFromLTWH(0, 0, 40, 40), [4]float64{4, 0, 8, 0}))

	curves := 0
	for _, cmd := range p.Commands {
		if cmd.Op == PathOpCubicTo {
			curves++
		}
	}
	if curves != 2 {
		t.Errorf("curves = %d, want 2", curves)
	}
	start := p.Commands[0]
	if start.Op != PathOpMoveTo || start.Args[0] != 4 || start.Args[1] != 0 {
		t.Errorf("start = %+v, want move_to(4, 0)", start)
	}
}

func TestAddPolygon(t *testing.T) {
	p := NewPath()
	p.AddPolygon(Offset{0, 0}, Offset{1, 0})
	if !p.IsEmpty() {
		t.Error("two points should add nothing")
	}
	p.AddPolygon(Offset{0, 0}, Offset{1, 0}, Offset{1, 1})
	if len(p.Commands) != 4 {
		t.Errorf("len(Commands) = %d, want 4", len(p.Commands))
	}
}

func TestClipOpString(t *testing.T) {
	tests := []struct {
		op   ClipOp
		want string
	}{
		{ClipOpIntersect, "intersect"},
		{ClipOpDifference, "difference"},
		{ClipOp(9), "ClipOp(9)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("ClipOp(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}
