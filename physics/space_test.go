package physics

import "testing"

func TestSpaceQueries(t *testing.T) {
	s := NewSpace()
	solid := s.AddBox(0.5, 0.5, 1, 1, false)
	coin := s.AddBox(3.5, 0.5, 0.5, 0.5, true)
	if solid == nil || coin == nil {
		t.Fatalf("AddBox returned nil")
	}

	tests := []struct {
		name       string
		x, y       float64
		wantSolid  bool
		wantSensor bool
	}{
		{"inside_solid", 0.5, 0.5, true, false},
		{"solid_edge", 1, 1, true, false},
		{"inside_sensor", 3.5, 0.5, false, true},
		{"outside_small_sensor", 3.1, 0.5, false, false},
		{"empty", 2, 2, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.SolidAt(tc.x, tc.y); got != tc.wantSolid {
				t.Fatalf("SolidAt(%v,%v)=%v want %v", tc.x, tc.y, got, tc.wantSolid)
			}
			if got := s.SensorAt(tc.x, tc.y); got != tc.wantSensor {
				t.Fatalf("SensorAt(%v,%v)=%v want %v", tc.x, tc.y, got, tc.wantSensor)
			}
		})
	}
}

func TestSpaceRemove(t *testing.T) {
	s := NewSpace()
	a := s.AddBox(0.5, 0.5, 1, 1, false)
	s.AddBox(1.5, 0.5, 1, 1, false)

	if !s.Remove(a) {
		t.Fatalf("Remove should report true for a registered shape")
	}
	if s.Remove(a) {
		t.Fatalf("second Remove should report false")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 shape, got %d", s.Len())
	}
	if s.SolidAt(0.25, 0.5) {
		t.Fatalf("removed box still answers queries")
	}

	s.Clear()
	if s.Len() != 0 || len(s.Shapes()) != 0 {
		t.Fatalf("Clear left %d shapes", s.Len())
	}
}

func TestAddBoxRejectsEmpty(t *testing.T) {
	s := NewSpace()
	if s.AddBox(0, 0, 0, 1, false) != nil {
		t.Fatalf("zero-width box should not be added")
	}
	s.Step(1.0 / 60)
}
