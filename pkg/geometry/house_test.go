package geometry

import "testing"

func TestShape(t *testing.T) {
	for house := 1; house <= Houses; house++ {
		want := ShapeTriangle
		if house%3 == 1 {
			want = ShapeDiamond
		}
		if got := Shape(house); got != want {
			t.Errorf("Shape(%d) = %v, want %v", house, got, want)
		}
	}
	if Shape(0) != ShapeUnknown || Shape(13) != ShapeUnknown {
		t.Error("out-of-range houses should be ShapeUnknown")
	}
}

func TestPolygon(t *testing.T) {
	tests := []struct {
		house int
		want  []Point
	}{
		{1, []Point{{50, 0}, {75, 25}, {50, 50}, {25, 25}}},
		{2, []Point{{0, 0}, {50, 0}, {25, 25}}},
		{3, []Point{{0, 0}, {0, 50}, {25, 25}}},
		{9, []Point{{100, 100}, {100, 50}, {75, 75}}},
		{10, []Point{{100, 50}, {75, 75}, {50, 50}, {75, 25}}},
	}

	for _, tt := range tests {
		got := Polygon(tt.house)
		if len(got) != len(tt.want) {
			t.Fatalf("Polygon(%d) = %v, want %v", tt.house, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Polygon(%d)[%d] = %v, want %v", tt.house, i, got[i], tt.want[i])
			}
		}
	}

	if Polygon(0) != nil {
		t.Error("Polygon(0) should be nil")
	}
}

func TestHousesTileTheChart(t *testing.T) {
	// Sample a grid away from the frame lines: every point belongs to exactly one house.
	for x := 1.5; x < Size; x += 3 {
		for y := 1.0; y < Size; y += 3 {
			pt := Point{x, y}
			n := 0
			for house := 1; house <= Houses; house++ {
				if Contains(house, pt) {
					n++
				}
			}
			if n != 1 {
				t.Errorf("point %v is inside %d houses", pt, n)
			}
		}
	}
}

func TestLabelAnchorInsideHouse(t *testing.T) {
	for house := 1; house <= Houses; house++ {
		if pt := LabelAnchor(house); !Contains(house, pt) {
			t.Errorf("LabelAnchor(%d) = %v lies outside the house", house, pt)
		}
		if pt := Centroid(house); !Contains(house, pt) {
			t.Errorf("Centroid(%d) = %v lies outside the house", house, pt)
		}
	}
}

func TestFrame(t *testing.T) {
	if got := len(Frame()); got != 10 {
		t.Errorf("len(Frame()) = %d, want 10", got)
	}
}
