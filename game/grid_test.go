package game

import (
	"slices"
	"testing"
)

// TestSpatialGrid_CandidatesSorted tests container order and locality
func TestSpatialGrid_CandidatesSorted(t *testing.T) {
	sg := NewSpatialGrid(Rect(WIDTH, HEIGHT), PlaneXY, 64)
	sg.Insert(Vec{X: 100, Y: 100}, 18, 2)
	sg.Insert(Vec{X: 130, Y: 100}, 18, 0)
	sg.Insert(Vec{X: 800, Y: 500}, 18, 1)

	got := sg.Candidates(Vec{X: 110, Y: 100}, 4, nil)
	if !slices.Equal(got, []int{0, 2}) {
		t.Errorf("Expected candidates [0 2], got %v", got)
	}
}

// TestSpatialGrid_ClampsOutsideArea tests entities outside the grid area
func TestSpatialGrid_ClampsOutsideArea(t *testing.T) {
	sg := NewSpatialGrid(Rect(WIDTH, HEIGHT), PlaneXY, 64)
	sg.Insert(Vec{X: -50, Y: -50}, 1, 7)

	got := sg.Candidates(Vec{X: 5, Y: 5}, 1, nil)
	if !slices.Contains(got, 7) {
		t.Errorf("Expected clamped entry 7 in %v", got)
	}

	got = sg.Candidates(Vec{X: -500, Y: -500}, 1, nil)
	if !slices.Contains(got, 7) {
		t.Errorf("Expected out-of-area query to reach edge cell, got %v", got)
	}
}

// TestSpatialGrid_Clear tests that Clear empties every cell
func TestSpatialGrid_Clear(t *testing.T) {
	sg := NewSpatialGrid(Square(45), PlaneXZ, 4)
	sg.Insert(Vec{X: 1, Z: 1}, 1.4, 0)
	sg.Clear()

	if got := sg.Candidates(Vec{X: 1, Z: 1}, 1, nil); len(got) != 0 {
		t.Errorf("Expected no candidates after Clear, got %v", got)
	}
}

// TestSpatialGrid_GroundPlane tests that height does not affect cells
func TestSpatialGrid_GroundPlane(t *testing.T) {
	sg := NewSpatialGrid(Square(45), PlaneXZ, 4)
	sg.Insert(Vec{X: 10, Y: 50, Z: -10}, 1.4, 3)

	got := sg.Candidates(Vec{X: 10, Y: 0, Z: -10}, 0.1, nil)
	if !slices.Equal(got, []int{3}) {
		t.Errorf("Expected [3], got %v", got)
	}
}
