package geom3d

import "testing"

func TestFromExtremaSwapsInvertedBounds(t *testing.T) {
	box := FromExtrema(4, 1, 2, 3, 9, 5)
	want := BoundingBox{MinX: 1, MaxX: 4, MinY: 2, MaxY: 3, MinZ: 5, MaxZ: 9}
	if box != want {
		t.Errorf("got %v, want %v", box, want)
	}
}

func TestContaining(t *testing.T) {
	box, err := Containing(Point{1, 2, 3}, Point{4, 0, -1}, Point{-2, 5, 2})
	if err != nil {
		t.Fatalf("Containing: %v", err)
	}
	want := BoundingBox{MinX: -2, MaxX: 4, MinY: 0, MaxY: 5, MinZ: -1, MaxZ: 3}
	if box != want {
		t.Errorf("got %v, want %v", box, want)
	}

	if _, err := Containing(); err != ErrEmptyInput {
		t.Errorf("empty input: got err %v, want ErrEmptyInput", err)
	}
}

func TestHullAndSingleton(t *testing.T) {
	a := Singleton(Point{1, 2, 3})
	b := Singleton(Point{-1, 4, 0})
	got := a.Hull(b)
	want := BoundingBox{MinX: -1, MaxX: 1, MinY: 2, MaxY: 4, MinZ: 0, MaxZ: 3}
	if got != want {
		t.Errorf("Hull: got %v, want %v", got, want)
	}

	// Idempotent and commutative.
	if a.Hull(a) != a {
		t.Error("hull(a,a) != a")
	}
	if a.Hull(b) != b.Hull(a) {
		t.Error("hull not commutative")
	}
}

func TestOverlapsAndIntersection(t *testing.T) {
	a := BoundingBox{MinX: 0, MaxX: 2, MinY: 0, MaxY: 2, MinZ: 0, MaxZ: 2}
	b := BoundingBox{MinX: 1, MaxX: 3, MinY: 1, MaxY: 3, MinZ: 1, MaxZ: 3}

	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Fatal("expected overlap both ways")
	}
	got, ok := a.Intersection(b)
	if !ok {
		t.Fatal("expected intersection")
	}
	want := BoundingBox{MinX: 1, MaxX: 2, MinY: 1, MaxY: 2, MinZ: 1, MaxZ: 2}
	if got != want {
		t.Errorf("Intersection: got %v, want %v", got, want)
	}

	// Separated along Z only is still disjoint.
	c := BoundingBox{MinX: 0, MaxX: 2, MinY: 0, MaxY: 2, MinZ: 5, MaxZ: 6}
	if a.Overlaps(c) {
		t.Error("boxes separated in z must not overlap")
	}
	if _, ok := a.Intersection(c); ok {
		t.Error("disjoint boxes must report no intersection")
	}

	// Face-touching boxes overlap with zero-width intersection.
	d := BoundingBox{MinX: 2, MaxX: 4, MinY: 0, MaxY: 2, MinZ: 0, MaxZ: 2}
	section, ok := a.Intersection(d)
	if !ok || section.MinX != 2 || section.MaxX != 2 {
		t.Errorf("face touching: ok=%v section=%v", ok, section)
	}
}

func TestContainment(t *testing.T) {
	outer := BoundingBox{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10, MinZ: 0, MaxZ: 10}
	inner := BoundingBox{MinX: 2, MaxX: 8, MinY: 0, MaxY: 10, MinZ: 1, MaxZ: 9}

	if !inner.IsContainedIn(outer) {
		t.Error("inner must be contained")
	}
	if !outer.IsContainedIn(outer) {
		t.Error("containment must be reflexive")
	}
	if !outer.Overlaps(inner) {
		t.Error("containment must imply overlap")
	}

	if !outer.ContainsPoint(Point{10, 0, 5}) {
		t.Error("boundary point is inclusive")
	}
	if outer.ContainsPoint(Point{10.01, 0, 5}) {
		t.Error("exterior point")
	}
}

func TestCentroidAndDimensions(t *testing.T) {
	box := BoundingBox{MinX: 1, MaxX: 3, MinY: -2, MaxY: 4, MinZ: 0, MaxZ: 10}
	if got := box.Centroid(); got != (Point{2, 1, 5}) {
		t.Errorf("Centroid: got %v", got)
	}
	dx, dy, dz := box.Dimensions()
	if dx != 2 || dy != 6 || dz != 10 {
		t.Errorf("Dimensions: got %v %v %v", dx, dy, dz)
	}
}

func TestExpandBy(t *testing.T) {
	box := BoundingBox{MinX: 0, MaxX: 2, MinY: 0, MaxY: 2, MinZ: 0, MaxZ: 8}
	grown := box.ExpandBy(1)
	if grown.MinZ != -1 || grown.MaxZ != 9 {
		t.Errorf("grow: got %v", grown)
	}
	// Only the axes that would invert collapse.
	shrunk := box.ExpandBy(-2)
	if shrunk.MinX != 1 || shrunk.MaxX != 1 {
		t.Errorf("x should collapse: got %v", shrunk)
	}
	if shrunk.MinZ != 2 || shrunk.MaxZ != 6 {
		t.Errorf("z should shrink: got %v", shrunk)
	}
}
