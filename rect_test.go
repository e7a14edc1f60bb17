package polyclean

import (
	"testing"
)

func TestRectFromPoints(t *testing.T) {
	r := NewRectFromPoints(Pt(10, -5), Pt(0, 5))
	diff(t, Rect{0, -5, 10, 5}, r)
	if w, h := r.Width(), r.Height(); w != 10 || h != 10 {
		t.Errorf("got size %gx%g, want 10x10", w, h)
	}
	diff(t, Pt(0, -5), r.Min())
	diff(t, Pt(10, 5), r.Max())
}

func TestRectUnion(t *testing.T) {
	if !emptyRect.IsEmpty() {
		t.Error("emptyRect isn't empty")
	}
	r := emptyRect.UnionPoint(Pt(1, 2))
	if r.IsEmpty() {
		t.Error("rect containing a point is empty")
	}
	diff(t, Rect{1, 2, 1, 2}, r)
	diff(t, Rect{-1, 2, 4, 6}, r.Union(Rect{-1, 3, 4, 6}))
	diff(t, r, r.Union(emptyRect))
}

func TestRectOverlaps(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	tests := []struct {
		o    Rect
		want bool
	}{
		{Rect{5, 5, 15, 15}, true},
		{Rect{10, 0, 20, 10}, true},
		{Rect{10.5, 0, 20, 10}, false},
		{Rect{2, 2, 3, 3}, true},
		{Rect{0, -5, 10, -0.1}, false},
	}
	for _, tt := range tests {
		if got := r.Overlaps(tt.o); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %t, want %t", r, tt.o, got, tt.want)
		}
		if got := tt.o.Overlaps(r); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %t, want %t", tt.o, r, got, tt.want)
		}
	}
	diff(t, Rect{-1, -2, 11, 12}, r.Inflate(1, 2))
}
