package collision

import (
	"testing"

	"github.com/milk9111/platformer/common"
)

func rect(x, y, w, h float64) common.Rect {
	return common.Rect{Pos: common.Vec{X: x, Y: y}, Width: w, Height: h}
}

func TestOverlaps(t *testing.T) {
	block := rect(100, 100, 16, 16)

	cases := []struct {
		name string
		a    common.Rect
		want bool
	}{
		{"inside", rect(104, 104, 4, 4), true},
		{"covering", rect(90, 90, 40, 40), true},
		{"touch_left_edge", rect(86, 100, 14, 16), true},
		{"touch_top_edge", rect(100, 73, 14, 27), true},
		{"touch_corner", rect(90, 90, 10, 10), true},
		{"gap_left", rect(85, 100, 14, 16), false},
		{"gap_above", rect(100, 72, 14, 27), false},
		{"below", rect(100, 116.01, 16, 16), false},
		{"right", rect(116.5, 100, 16, 16), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Overlaps(c.a, block); got != c.want {
				t.Fatalf("Overlaps(a, block) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	var rects []common.Rect
	for _, x := range []float64{-20, 0, 8, 16, 30} {
		for _, y := range []float64{-5, 0, 4, 16, 40} {
			for _, size := range []float64{0, 4, 16} {
				rects = append(rects, rect(x, y, size, size+2))
			}
		}
	}

	for _, a := range rects {
		for _, b := range rects {
			if Overlaps(a, b) != Overlaps(b, a) {
				t.Fatalf("asymmetric overlap for %+v and %+v", a, b)
			}
		}
	}
}

func TestOverlapsZeroSeparation(t *testing.T) {
	a := rect(0, 0, 10, 10)
	adjacent := []common.Rect{
		rect(10, 0, 10, 10),
		rect(-10, 0, 10, 10),
		rect(0, 10, 10, 10),
		rect(0, -10, 10, 10),
		rect(10, 10, 5, 5),
	}
	for _, b := range adjacent {
		if !Overlaps(a, b) {
			t.Fatalf("expected zero-separation overlap with %+v", b)
		}
	}
}

func TestPlatformOverlap(t *testing.T) {
	platform := rect(50, 50, 16, 4)

	cases := []struct {
		name string
		a    common.Rect
		want bool
	}{
		{"bottom_on_top_edge", rect(52, 30, 10, 20), true},
		{"bottom_inside_span", rect(52, 32, 10, 20), true},
		{"bottom_on_bottom_edge", rect(52, 34, 10, 20), true},
		{"fully_above", rect(52, 28, 10, 20), false},
		{"bottom_below_span", rect(52, 35, 10, 20), false},
		{"body_through_platform", rect(52, 45, 10, 20), false},
		{"no_horizontal_overlap", rect(80, 32, 10, 20), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := PlatformOverlap(c.a, platform); got != c.want {
				t.Fatalf("PlatformOverlap = %v, want %v", got, c.want)
			}
		})
	}
}

func TestPlatformOverlapIgnoresHorizontalWhenOutOfSpan(t *testing.T) {
	platform := rect(50, 50, 16, 4)
	for _, bottom := range []float64{10, 49.99, 54.01, 90} {
		a := rect(40, bottom-20, 40, 20)
		if PlatformOverlap(a, platform) {
			t.Fatalf("bottom=%g should not touch the platform", bottom)
		}
	}
}
